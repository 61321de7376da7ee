package billing

import (
	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmountInWords converts a monetary amount to its textual form. The concrete
// converter is an external collaborator injected by the application layer.
type AmountInWords func(decimal.Decimal) string

// MoneyReceipt records a single payment event. It may be linked to an owner
// party (resolved from the user_type tag plus external id), a vehicle (by
// chassis number) and an invoice (by invoice or job number); every linkage is
// optional and its absence is not an error.
type MoneyReceipt struct {
	shared.BaseAggregateRoot
	shared.Recyclable
	ReceiptNo        string          `json:"moneyReceiptId"`
	OwnerKind        party.OwnerKind `json:"user_type"`
	ExternalID       string          `json:"Id"` // owner party's external id
	Owner            party.Owner     `json:"-"`  // resolved owner, unlinked when no party matched
	ChassisNo        string          `json:"chassis_no"`
	FullRegNo        string          `json:"full_reg_number"`
	VehicleID        *uuid.UUID      `json:"-"`
	InvoiceID        *uuid.UUID      `json:"-"`
	InvoiceNo        string          `json:"invoice"`
	JobNo            string          `json:"job_no"`
	Date             string          `json:"date"`
	AgainstBillNo    string          `json:"against_bill_no_method"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Advance          *decimal.Decimal
	Remaining        *decimal.Decimal
	PaymentStatus    PaymentStatus `json:"payment_status"`
	TotalInWords     string        `json:"total_amount_in_words"`
	AdvanceInWords   string        `json:"advance_in_words"`
	RemainingInWords string        `json:"remaining_in_words"`
	PaymentMethod    string        `json:"payment_method"`
	AccountNo        string        `json:"account_no"`
	TransactionNo    string        `json:"transaction_no"`
	CheckNo          string        `json:"check_no"`
	BankName         string        `json:"bank_name"`
}

// NewMoneyReceipt creates a new money receipt draft for the given owner tag.
func NewMoneyReceipt(receiptNo string, ownerKind party.OwnerKind, externalID string, totalAmount decimal.Decimal) (*MoneyReceipt, error) {
	if receiptNo == "" {
		return nil, shared.NewDomainError("INVALID_RECEIPT_NO", "Receipt number cannot be empty")
	}
	if !ownerKind.IsValid() {
		return nil, shared.NewDomainError("INVALID_USER_TYPE", "User type is not valid")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount cannot be negative")
	}
	return &MoneyReceipt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ReceiptNo:         receiptNo,
		OwnerKind:         ownerKind,
		ExternalID:        externalID,
		TotalAmount:       totalAmount,
	}, nil
}

// SetAmounts records the optional advance/remaining amounts. Remaining must
// never be negative.
func (mr *MoneyReceipt) SetAmounts(advance, remaining *decimal.Decimal) error {
	if remaining != nil && remaining.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Remaining amount cannot be negative")
	}
	mr.Advance = advance
	mr.Remaining = remaining
	return nil
}

// DeriveWords fills the in-words fields from the numeric amounts. A blank
// advance reads "Zero"; a blank remaining reads as the empty string.
func (mr *MoneyReceipt) DeriveWords(inWords AmountInWords) {
	mr.TotalInWords = inWords(mr.TotalAmount)
	if mr.Advance != nil {
		mr.AdvanceInWords = inWords(*mr.Advance)
	} else {
		mr.AdvanceInWords = "Zero"
	}
	if mr.Remaining != nil {
		mr.RemainingInWords = inWords(*mr.Remaining)
	} else {
		mr.RemainingInWords = ""
	}
}

// LinkOwner sets the resolved owner reference. The reference's kind must
// match the receipt's user_type tag.
func (mr *MoneyReceipt) LinkOwner(owner party.Owner) error {
	if owner.IsLinked() && owner.Kind != mr.OwnerKind {
		return shared.NewDomainError("OWNER_KIND_MISMATCH", "Owner reference does not match the receipt user type")
	}
	mr.Owner = owner
	return nil
}

// LinkVehicle records the vehicle identity and its denormalized registration
// number.
func (mr *MoneyReceipt) LinkVehicle(vehicle *party.Vehicle, fullRegNo string) {
	id := vehicle.ID
	mr.VehicleID = &id
	mr.FullRegNo = fullRegNo
}

// LinkInvoice records the invoice reference; the receipt inherits the
// invoice's canonical job number.
func (mr *MoneyReceipt) LinkInvoice(inv *Invoice) {
	id := inv.ID
	mr.InvoiceID = &id
	mr.JobNo = inv.JobNo
}

// PaymentDraft returns the amount fields used by reconciliation.
func (mr *MoneyReceipt) PaymentDraft() PaymentDraft {
	return PaymentDraft{
		Method:      mr.AgainstBillNo,
		TotalAmount: mr.TotalAmount,
		Advance:     mr.Advance,
	}
}
