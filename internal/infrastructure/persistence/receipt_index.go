package persistence

import (
	"context"

	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReceiptIndex implements ReceiptIndex using GORM. Rows live in the
// owner_receipts join table keyed by (kind, party, receipt), so attaching
// the same receipt twice is a no-op at the database level.
type GormReceiptIndex struct {
	db *gorm.DB
}

// NewGormReceiptIndex creates a new GormReceiptIndex
func NewGormReceiptIndex(db *gorm.DB) *GormReceiptIndex {
	return &GormReceiptIndex{db: db}
}

// Attach records the receipt under the owner. Duplicate attaches leave a
// single row.
func (r *GormReceiptIndex) Attach(ctx context.Context, owner party.Owner, receiptID uuid.UUID) error {
	if !owner.IsLinked() {
		return nil
	}
	row := models.OwnerReceiptModel{
		OwnerKind: owner.Kind,
		PartyID:   owner.PartyID,
		ReceiptID: receiptID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

// Detach removes the receipt from the owner's index. Detaching a receipt
// that was never attached is not an error.
func (r *GormReceiptIndex) Detach(ctx context.Context, owner party.Owner, receiptID uuid.UUID) error {
	if !owner.IsLinked() {
		return nil
	}
	return r.db.WithContext(ctx).
		Delete(&models.OwnerReceiptModel{},
			"owner_kind = ? AND party_id = ? AND receipt_id = ?",
			owner.Kind, owner.PartyID, receiptID).Error
}

// ReceiptIDs lists the receipts attached to the owner
func (r *GormReceiptIndex) ReceiptIDs(ctx context.Context, owner party.Owner) ([]uuid.UUID, error) {
	if !owner.IsLinked() {
		return []uuid.UUID{}, nil
	}
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.OwnerReceiptModel{}).
		Where("owner_kind = ? AND party_id = ?", owner.Kind, owner.PartyID).
		Pluck("receipt_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Ensure GormReceiptIndex implements ReceiptIndex
var _ party.ReceiptIndex = (*GormReceiptIndex)(nil)
