package models

import (
	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/party"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice domain entity.
type InvoiceModel struct {
	AggregateModel
	RecyclableModel
	InvoiceNo string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	JobNo     string          `gorm:"type:varchar(50);index"`
	NetTotal  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Discount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Advance   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Due       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Recyclable:        m.ToDomainRecyclable(),
		InvoiceNo:         m.InvoiceNo,
		JobNo:             m.JobNo,
		NetTotal:          m.NetTotal,
		Discount:          m.Discount,
		Advance:           m.Advance,
		Due:               m.Due,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.FromDomainRecyclable(inv.Recyclable)
	m.InvoiceNo = inv.InvoiceNo
	m.JobNo = inv.JobNo
	m.NetTotal = inv.NetTotal
	m.Discount = inv.Discount
	m.Advance = inv.Advance
	m.Due = inv.Due
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceReceiptModel is the join row between an invoice and one of the
// receipts settled against it. The composite primary key makes
// AttachReceipt idempotent.
type InvoiceReceiptModel struct {
	InvoiceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReceiptID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for GORM
func (InvoiceReceiptModel) TableName() string {
	return "invoice_receipts"
}

// MoneyReceiptModel is the persistence model for the MoneyReceipt domain
// entity. Owner linkage is denormalized: OwnerKind and ExternalID carry the
// request tag, OwnerPartyID the resolved party when one matched.
type MoneyReceiptModel struct {
	AggregateModel
	RecyclableModel
	ReceiptNo        string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	OwnerKind        party.OwnerKind       `gorm:"type:varchar(20);not null"`
	ExternalID       string                `gorm:"type:varchar(50);index"`
	OwnerPartyID     *uuid.UUID            `gorm:"type:uuid;index"`
	ChassisNo        string                `gorm:"type:varchar(100);index"`
	FullRegNo        string                `gorm:"type:varchar(100)"`
	VehicleID        *uuid.UUID            `gorm:"type:uuid;index"`
	InvoiceID        *uuid.UUID            `gorm:"type:uuid;index"`
	InvoiceNo        string                `gorm:"type:varchar(50);index"`
	JobNo            string                `gorm:"type:varchar(50);index"`
	Date             string                `gorm:"type:varchar(50)"`
	AgainstBillNo    string                `gorm:"type:varchar(50)"`
	TotalAmount      decimal.Decimal       `gorm:"type:decimal(18,2);not null;default:0"`
	Advance          *decimal.Decimal      `gorm:"type:decimal(18,2)"`
	Remaining        *decimal.Decimal      `gorm:"type:decimal(18,2)"`
	PaymentStatus    billing.PaymentStatus `gorm:"type:varchar(20)"`
	TotalInWords     string                `gorm:"type:text"`
	AdvanceInWords   string                `gorm:"type:text"`
	RemainingInWords string                `gorm:"type:text"`
	PaymentMethod    string                `gorm:"type:varchar(50)"`
	AccountNo        string                `gorm:"type:varchar(100)"`
	TransactionNo    string                `gorm:"type:varchar(100)"`
	CheckNo          string                `gorm:"type:varchar(100)"`
	BankName         string                `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (MoneyReceiptModel) TableName() string {
	return "money_receipts"
}

// ToDomain converts the persistence model to a domain MoneyReceipt entity.
func (m *MoneyReceiptModel) ToDomain() *billing.MoneyReceipt {
	mr := &billing.MoneyReceipt{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Recyclable:        m.ToDomainRecyclable(),
		ReceiptNo:         m.ReceiptNo,
		OwnerKind:         m.OwnerKind,
		ExternalID:        m.ExternalID,
		ChassisNo:         m.ChassisNo,
		FullRegNo:         m.FullRegNo,
		VehicleID:         m.VehicleID,
		InvoiceID:         m.InvoiceID,
		InvoiceNo:         m.InvoiceNo,
		JobNo:             m.JobNo,
		Date:              m.Date,
		AgainstBillNo:     m.AgainstBillNo,
		TotalAmount:       m.TotalAmount,
		Advance:           m.Advance,
		Remaining:         m.Remaining,
		PaymentStatus:     m.PaymentStatus,
		TotalInWords:      m.TotalInWords,
		AdvanceInWords:    m.AdvanceInWords,
		RemainingInWords:  m.RemainingInWords,
		PaymentMethod:     m.PaymentMethod,
		AccountNo:         m.AccountNo,
		TransactionNo:     m.TransactionNo,
		CheckNo:           m.CheckNo,
		BankName:          m.BankName,
	}
	if m.OwnerPartyID != nil {
		mr.Owner = party.Owner{Kind: m.OwnerKind, PartyID: *m.OwnerPartyID}
	}
	return mr
}

// FromDomain populates the persistence model from a domain MoneyReceipt entity.
func (m *MoneyReceiptModel) FromDomain(mr *billing.MoneyReceipt) {
	m.FromDomainAggregateRoot(mr.BaseAggregateRoot)
	m.FromDomainRecyclable(mr.Recyclable)
	m.ReceiptNo = mr.ReceiptNo
	m.OwnerKind = mr.OwnerKind
	m.ExternalID = mr.ExternalID
	m.ChassisNo = mr.ChassisNo
	m.FullRegNo = mr.FullRegNo
	m.VehicleID = mr.VehicleID
	m.InvoiceID = mr.InvoiceID
	m.InvoiceNo = mr.InvoiceNo
	m.JobNo = mr.JobNo
	m.Date = mr.Date
	m.AgainstBillNo = mr.AgainstBillNo
	m.TotalAmount = mr.TotalAmount
	m.Advance = mr.Advance
	m.Remaining = mr.Remaining
	m.PaymentStatus = mr.PaymentStatus
	m.TotalInWords = mr.TotalInWords
	m.AdvanceInWords = mr.AdvanceInWords
	m.RemainingInWords = mr.RemainingInWords
	m.PaymentMethod = mr.PaymentMethod
	m.AccountNo = mr.AccountNo
	m.TransactionNo = mr.TransactionNo
	m.CheckNo = mr.CheckNo
	m.BankName = mr.BankName
	if mr.Owner.IsLinked() {
		id := mr.Owner.PartyID
		m.OwnerPartyID = &id
	} else {
		m.OwnerPartyID = nil
	}
}

// MoneyReceiptModelFromDomain creates a new persistence model from a domain MoneyReceipt entity.
func MoneyReceiptModelFromDomain(mr *billing.MoneyReceipt) *MoneyReceiptModel {
	m := &MoneyReceiptModel{}
	m.FromDomain(mr)
	return m
}
