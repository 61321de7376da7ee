package billing

import "github.com/shopspring/decimal"

// Payment-mode selectors. These are free-text values chosen on the receipt
// form; only the two below branch the reconciliation.
const (
	MethodAdvanceAgainstBill = "Advance against bill no"
	MethodFinalAgainstBill   = "Final payment against bill no"
)

// PaymentStatus is derived from the payment-mode selector
type PaymentStatus string

const (
	PaymentStatusFinal   PaymentStatus = "final"
	PaymentStatusAdvance PaymentStatus = "advance"
)

// DerivePaymentStatus maps the against-bill method to a payment status.
func DerivePaymentStatus(method string) PaymentStatus {
	if method == MethodFinalAgainstBill {
		return PaymentStatusFinal
	}
	return PaymentStatusAdvance
}

// PaymentDraft carries the amount fields of a receipt being reconciled.
// Advance is nil when the form left it blank.
type PaymentDraft struct {
	Method      string
	TotalAmount decimal.Decimal
	Advance     *decimal.Decimal
}

// Reconcile applies a payment draft to the invoice and returns the derived
// payment status.
//
// The current payment is the draft's advance for the advance-against-bill
// mode, the invoice's whole remaining balance (due + previous advance) for a
// final payment, and the draft's total amount otherwise. The advance mode
// accumulates on top of the previous advance; every other mode replaces it.
// Due never goes below zero.
func Reconcile(inv *Invoice, draft PaymentDraft) PaymentStatus {
	status := DerivePaymentStatus(draft.Method)

	var currentPayment decimal.Decimal
	switch {
	case draft.Method == MethodAdvanceAgainstBill:
		if draft.Advance != nil {
			currentPayment = *draft.Advance
		}
	case status == PaymentStatusFinal:
		currentPayment = inv.Due.Add(inv.Advance)
	default:
		currentPayment = draft.TotalAmount
	}

	updatedAdvance := currentPayment
	if draft.Method == MethodAdvanceAgainstBill {
		updatedAdvance = inv.Advance.Add(currentPayment)
	}

	updatedDue := inv.NetTotal.Sub(updatedAdvance)
	if updatedDue.IsNegative() {
		updatedDue = decimal.Zero
	}

	inv.Advance = updatedAdvance
	inv.Due = updatedDue
	return status
}
