package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/garage/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByExternalID finds a company by its business-assigned external id.
// A missing company returns (nil, nil); receipts reference parties loosely
// and an unknown id simply leaves the receipt unlinked.
func (r *GormCompanyRepository) FindByExternalID(ctx context.Context, companyID string) (*party.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *party.Company) error {
	model := models.CompanyModelFromDomain(company)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a company
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, "id = ?", id)
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
func (r *GormCompanyRepository) UpdateAllRecycled(ctx context.Context, recycled bool) (shared.BulkResult, error) {
	query := r.db.WithContext(ctx).Model(&models.CompanyModel{})
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

// NextCompanySeq returns the next value of the business company-id sequence
func (r *GormCompanyRepository) NextCompanySeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT nextval('company_id_seq')").
		Scan(&seq).Error; err != nil {
		return 0, err
	}
	return seq, nil
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ party.CompanyRepository = (*GormCompanyRepository)(nil)
