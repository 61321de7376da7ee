package billing

import (
	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateMoneyReceiptRequest carries the receipt form payload. Field names
// follow the public API contract; Id is the owner party's business id.
type CreateMoneyReceiptRequest struct {
	UserType      string           `json:"user_type" binding:"required,oneof=customer company showRoom"`
	ExternalID    string           `json:"Id" binding:"required"`
	ChassisNo     string           `json:"chassis_no"`
	InvoiceNo     string           `json:"invoice"`
	JobNo         string           `json:"job_no"`
	Date          string           `json:"date"`
	AgainstBillNo string           `json:"against_bill_no_method"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	Advance       *decimal.Decimal `json:"advance"`
	Remaining     *decimal.Decimal `json:"remaining"`
	PaymentMethod string           `json:"payment_method"`
	AccountNo     string           `json:"account_no"`
	TransactionNo string           `json:"transaction_no"`
	CheckNo       string           `json:"check_no"`
	BankName      string           `json:"bank_name"`
}

// UpdateMoneyReceiptRequest carries the editable receipt fields.
type UpdateMoneyReceiptRequest struct {
	UserType      string           `json:"user_type" binding:"omitempty,oneof=customer company showRoom"`
	ExternalID    string           `json:"Id"`
	ChassisNo     string           `json:"chassis_no"`
	InvoiceNo     string           `json:"invoice"`
	JobNo         string           `json:"job_no"`
	Date          string           `json:"date"`
	AgainstBillNo string           `json:"against_bill_no_method"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	Advance       *decimal.Decimal `json:"advance"`
	Remaining     *decimal.Decimal `json:"remaining"`
	PaymentMethod string           `json:"payment_method"`
	AccountNo     string           `json:"account_no"`
	TransactionNo string           `json:"transaction_no"`
	CheckNo       string           `json:"check_no"`
	BankName      string           `json:"bank_name"`
}

// MoneyReceiptResponse is the receipt read model. PaymentColor is the
// page-local traffic-light annotation of the receipt's job group and is only
// set by listings.
type MoneyReceiptResponse struct {
	ID               uuid.UUID        `json:"id"`
	ReceiptNo        string           `json:"moneyReceiptId"`
	UserType         string           `json:"user_type"`
	ExternalID       string           `json:"Id"`
	OwnerPartyID     *uuid.UUID       `json:"owner_party_id,omitempty"`
	ChassisNo        string           `json:"chassis_no"`
	FullRegNo        string           `json:"full_reg_number"`
	VehicleID        *uuid.UUID       `json:"vehicle_id,omitempty"`
	InvoiceID        *uuid.UUID       `json:"invoice_id,omitempty"`
	InvoiceNo        string           `json:"invoice"`
	JobNo            string           `json:"job_no"`
	Date             string           `json:"date"`
	AgainstBillNo    string           `json:"against_bill_no_method"`
	TotalAmount      decimal.Decimal  `json:"total_amount"`
	Advance          *decimal.Decimal `json:"advance,omitempty"`
	Remaining        *decimal.Decimal `json:"remaining,omitempty"`
	PaymentStatus    string           `json:"payment_status"`
	TotalInWords     string           `json:"total_amount_in_words"`
	AdvanceInWords   string           `json:"advance_in_words"`
	RemainingInWords string           `json:"remaining_in_words"`
	PaymentMethod    string           `json:"payment_method"`
	AccountNo        string           `json:"account_no,omitempty"`
	TransactionNo    string           `json:"transaction_no,omitempty"`
	CheckNo          string           `json:"check_no,omitempty"`
	BankName         string           `json:"bank_name,omitempty"`
	PaymentColor     string           `json:"paymentColor,omitempty"`
	IsRecycled       bool             `json:"isRecycled"`
	RecycledAt       *string          `json:"recycledAt,omitempty"`
	CreatedAt        string           `json:"createdAt"`
	UpdatedAt        string           `json:"updatedAt"`
}

// MoneyReceiptDetailResponse is the single-receipt read model with the
// amounts additionally formatted for display.
type MoneyReceiptDetailResponse struct {
	*MoneyReceiptResponse
	TotalAmountDisplay string `json:"total_amount_display"`
	AdvanceDisplay     string `json:"advance_display,omitempty"`
	RemainingDisplay   string `json:"remaining_display,omitempty"`
}

// ListMoneyReceiptsRequest carries listing parameters. OwnerID narrows the
// result to one party's receipts; pagination applies only when both Limit
// and Page are positive.
type ListMoneyReceiptsRequest struct {
	OwnerID    *uuid.UUID
	Limit      int
	Page       int
	SearchTerm string
	IsRecycled *bool
}

// ListMoneyReceiptsResponse is a page of receipts plus its meta.
type ListMoneyReceiptsResponse struct {
	Receipts []*MoneyReceiptResponse `json:"moneyReceipts"`
	Meta     shared.PageMeta         `json:"meta"`
}

func toMoneyReceiptResponse(mr *billing.MoneyReceipt) *MoneyReceiptResponse {
	resp := &MoneyReceiptResponse{
		ID:               mr.ID,
		ReceiptNo:        mr.ReceiptNo,
		UserType:         mr.OwnerKind.String(),
		ExternalID:       mr.ExternalID,
		ChassisNo:        mr.ChassisNo,
		FullRegNo:        mr.FullRegNo,
		VehicleID:        mr.VehicleID,
		InvoiceID:        mr.InvoiceID,
		InvoiceNo:        mr.InvoiceNo,
		JobNo:            mr.JobNo,
		Date:             mr.Date,
		AgainstBillNo:    mr.AgainstBillNo,
		TotalAmount:      mr.TotalAmount,
		Advance:          mr.Advance,
		Remaining:        mr.Remaining,
		PaymentStatus:    string(mr.PaymentStatus),
		TotalInWords:     mr.TotalInWords,
		AdvanceInWords:   mr.AdvanceInWords,
		RemainingInWords: mr.RemainingInWords,
		PaymentMethod:    mr.PaymentMethod,
		AccountNo:        mr.AccountNo,
		TransactionNo:    mr.TransactionNo,
		CheckNo:          mr.CheckNo,
		BankName:         mr.BankName,
		IsRecycled:       mr.IsRecycled,
		CreatedAt:        mr.CreatedAt.Format(timeLayout),
		UpdatedAt:        mr.UpdatedAt.Format(timeLayout),
	}
	if mr.Owner.IsLinked() {
		id := mr.Owner.PartyID
		resp.OwnerPartyID = &id
	}
	if mr.RecycledAt != nil {
		s := mr.RecycledAt.Format(timeLayout)
		resp.RecycledAt = &s
	}
	return resp
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"
