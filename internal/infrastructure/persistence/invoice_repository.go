package persistence

import (
	"context"
	"errors"

	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/garage/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByInvoiceOrJobNo returns the first invoice matching either number, or
// nil when neither matches. Blank numbers never match.
func (r *GormInvoiceRepository) FindByInvoiceOrJobNo(ctx context.Context, invoiceNo, jobNo string) (*billing.Invoice, error) {
	query := r.db.WithContext(ctx).Model(&models.InvoiceModel{})
	switch {
	case invoiceNo != "" && jobNo != "":
		query = query.Where("invoice_no = ? OR job_no = ?", invoiceNo, jobNo)
	case invoiceNo != "":
		query = query.Where("invoice_no = ?", invoiceNo)
	case jobNo != "":
		query = query.Where("job_no = ?", jobNo)
	default:
		return nil, nil
	}

	var model models.InvoiceModel
	if err := query.Order("created_at ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Save(model).Error
}

// AttachReceipt records the receipt in the invoice's receipt index.
// Attaching the same receipt twice leaves a single row.
func (r *GormInvoiceRepository) AttachReceipt(ctx context.Context, invoiceID, receiptID uuid.UUID) error {
	row := models.InvoiceReceiptModel{InvoiceID: invoiceID, ReceiptID: receiptID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

// ReceiptIDs lists the receipts attached to the invoice
func (r *GormInvoiceRepository) ReceiptIDs(ctx context.Context, invoiceID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceReceiptModel{}).
		Where("invoice_id = ?", invoiceID).
		Pluck("receipt_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
