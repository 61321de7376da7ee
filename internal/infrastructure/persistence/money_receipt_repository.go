package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/garage/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMoneyReceiptRepository implements MoneyReceiptRepository using GORM
type GormMoneyReceiptRepository struct {
	db *gorm.DB
}

// NewGormMoneyReceiptRepository creates a new GormMoneyReceiptRepository
func NewGormMoneyReceiptRepository(db *gorm.DB) *GormMoneyReceiptRepository {
	return &GormMoneyReceiptRepository{db: db}
}

// FindByID finds a money receipt by its ID
func (r *GormMoneyReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.MoneyReceipt, error) {
	var model models.MoneyReceiptModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a money receipt
func (r *GormMoneyReceiptRepository) Save(ctx context.Context, receipt *billing.MoneyReceipt) error {
	model := models.MoneyReceiptModelFromDomain(receipt)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a money receipt permanently
func (r *GormMoneyReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MoneyReceiptModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdateAllRecycled flips the recycle flag across the whole collection.
// Restoring touches only currently-recycled rows and clears their timestamps.
func (r *GormMoneyReceiptRepository) UpdateAllRecycled(ctx context.Context, recycled bool) (shared.BulkResult, error) {
	query := r.db.WithContext(ctx).Model(&models.MoneyReceiptModel{})
	var updates map[string]interface{}
	if recycled {
		updates = map[string]interface{}{
			"is_recycled": true,
			"recycled_at": time.Now(),
		}
	} else {
		query = query.Where("is_recycled = ?", true)
		updates = map[string]interface{}{
			"is_recycled": false,
			"recycled_at": nil,
		}
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return shared.BulkResult{}, result.Error
	}
	return shared.BulkResult{Matched: result.RowsAffected, Modified: result.RowsAffected}, nil
}

// NextReceiptSeq returns the next value of the business receipt-number sequence
func (r *GormMoneyReceiptRepository) NextReceiptSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT nextval('money_receipt_no_seq')").
		Scan(&seq).Error; err != nil {
		return 0, err
	}
	return seq, nil
}

// Ensure GormMoneyReceiptRepository implements MoneyReceiptRepository
var _ billing.MoneyReceiptRepository = (*GormMoneyReceiptRepository)(nil)
