package billing

import (
	"context"

	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByInvoiceOrJobNo returns the first invoice matching either number,
	// or nil when none does.
	FindByInvoiceOrJobNo(ctx context.Context, invoiceNo, jobNo string) (*Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
	// AttachReceipt records the receipt in the invoice's receipt index.
	// Attaching the same receipt twice leaves a single row.
	AttachReceipt(ctx context.Context, invoiceID, receiptID uuid.UUID) error
	ReceiptIDs(ctx context.Context, invoiceID uuid.UUID) ([]uuid.UUID, error)
}

// ReceiptSearch carries the listing parameters of the receipt read side.
// OwnerID narrows the result to receipts whose owner party or vehicle matches;
// DueOnly keeps only receipts with a positive remaining balance.
type ReceiptSearch struct {
	shared.ListQuery
	OwnerID *uuid.UUID
	DueOnly bool
}

// MoneyReceiptQuery is the read side of the receipt collection. Search
// returns the page of receipts newest first plus the total match count.
type MoneyReceiptQuery interface {
	Search(ctx context.Context, q ReceiptSearch) ([]*MoneyReceipt, int64, error)
}

// MoneyReceiptRepository defines persistence operations for money receipts.
// FindByID fails with shared.ErrNotFound when the id does not exist.
type MoneyReceiptRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MoneyReceipt, error)
	Save(ctx context.Context, receipt *MoneyReceipt) error
	Delete(ctx context.Context, id uuid.UUID) error
	// UpdateAllRecycled flips the recycle flag across the collection. When
	// recycled is false only currently-recycled rows are touched and their
	// recycle timestamps are cleared.
	UpdateAllRecycled(ctx context.Context, recycled bool) (shared.BulkResult, error)
	// NextReceiptSeq returns the next value of the business receipt-number
	// sequence.
	NextReceiptSeq(ctx context.Context) (int64, error)
}
