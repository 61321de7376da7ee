package persistence

import (
	"context"

	appbilling "github.com/garage/backend/internal/application/billing"
	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/party"
	"gorm.io/gorm"
)

// GormBillingTransactionScope implements the billing TransactionScope using
// GORM transactions. Receipt creation reconciles an invoice and touches the
// owner index in one atomic unit.
type GormBillingTransactionScope struct {
	db *gorm.DB
}

// NewGormBillingTransactionScope creates a new GormBillingTransactionScope.
func NewGormBillingTransactionScope(db *gorm.DB) *GormBillingTransactionScope {
	return &GormBillingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormBillingTransactionScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormBillingRepositories{tx: tx}
		return fn(repos)
	})
}

// gormBillingRepositories provides access to the billing repositories within a transaction.
type gormBillingRepositories struct {
	tx *gorm.DB
}

// Receipts returns the money receipt repository scoped to the current transaction.
func (r *gormBillingRepositories) Receipts() billing.MoneyReceiptRepository {
	return NewGormMoneyReceiptRepository(r.tx)
}

// Invoices returns the invoice repository scoped to the current transaction.
func (r *gormBillingRepositories) Invoices() billing.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// Vehicles returns the vehicle repository scoped to the current transaction.
func (r *gormBillingRepositories) Vehicles() party.VehicleRepository {
	return NewGormVehicleRepository(r.tx)
}

// Parties returns the party resolver scoped to the current transaction.
func (r *gormBillingRepositories) Parties() *party.Resolver {
	return party.NewResolver(
		NewGormCustomerRepository(r.tx),
		NewGormCompanyRepository(r.tx),
		NewGormShowRoomRepository(r.tx),
		NewGormReceiptIndex(r.tx),
	)
}

// Ensure GormBillingTransactionScope implements TransactionScope
var _ appbilling.TransactionScope = (*GormBillingTransactionScope)(nil)

// Ensure gormBillingRepositories implements TransactionalRepositories
var _ appbilling.TransactionalRepositories = (*gormBillingRepositories)(nil)
