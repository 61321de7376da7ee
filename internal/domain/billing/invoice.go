package billing

import (
	"github.com/garage/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Invoice is the financial document a money receipt settles against. The
// job number correlates it with the work order; receipts inherit it once
// linked. Invariant: Due = max(NetTotal - Advance, 0) after every
// reconciliation.
type Invoice struct {
	shared.BaseAggregateRoot
	shared.Recyclable
	InvoiceNo string          `json:"invoice_no"`
	JobNo     string          `json:"job_no"`
	NetTotal  decimal.Decimal `json:"net_total"`
	Discount  decimal.Decimal `json:"discount"`
	Advance   decimal.Decimal `json:"advance"`
	Due       decimal.Decimal `json:"due"`
}

// NewInvoice creates a new invoice with the full amount outstanding.
func NewInvoice(invoiceNo, jobNo string, netTotal decimal.Decimal) (*Invoice, error) {
	if invoiceNo == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NO", "Invoice number cannot be empty")
	}
	if netTotal.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Net total cannot be negative")
	}
	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNo:         invoiceNo,
		JobNo:             jobNo,
		NetTotal:          netTotal,
		Advance:           decimal.Zero,
		Due:               netTotal,
	}, nil
}

// IsSettled reports whether nothing remains due.
func (inv *Invoice) IsSettled() bool {
	return inv.Due.LessThanOrEqual(decimal.Zero)
}
