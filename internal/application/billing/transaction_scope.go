package billing

import (
	"context"

	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/party"
)

// TransactionScope provides transactional access to the repositories touched
// by a receipt write. When a function is executed within a transaction scope,
// all repository operations are part of the same database transaction and
// commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
//
// Aggregate boundary notes:
//   - Receipts: the MoneyReceipt aggregate. Linkage fields (owner, vehicle,
//     invoice) are persisted with the root.
//   - Invoices: the Invoice aggregate. Reconciliation writes go through it,
//     as does the invoice_receipts index.
//   - Vehicles: read-mostly lookup by chassis number during linkage.
//   - Parties: the resolver over customer/company/showroom repositories and
//     the owner_receipts index.
type TransactionalRepositories interface {
	// Receipts returns the money receipt repository scoped to the current transaction
	Receipts() billing.MoneyReceiptRepository
	// Invoices returns the invoice repository scoped to the current transaction
	Invoices() billing.InvoiceRepository
	// Vehicles returns the vehicle repository scoped to the current transaction
	Vehicles() party.VehicleRepository
	// Parties returns the party resolver scoped to the current transaction
	Parties() *party.Resolver
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful in tests and wherever transactional guarantees are
// not required.
type NoOpTransactionScope struct {
	receipts billing.MoneyReceiptRepository
	invoices billing.InvoiceRepository
	vehicles party.VehicleRepository
	parties  *party.Resolver
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	receipts billing.MoneyReceiptRepository,
	invoices billing.InvoiceRepository,
	vehicles party.VehicleRepository,
	parties *party.Resolver,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		receipts: receipts,
		invoices: invoices,
		vehicles: vehicles,
		parties:  parties,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Receipts returns the money receipt repository.
func (s *NoOpTransactionScope) Receipts() billing.MoneyReceiptRepository {
	return s.receipts
}

// Invoices returns the invoice repository.
func (s *NoOpTransactionScope) Invoices() billing.InvoiceRepository {
	return s.invoices
}

// Vehicles returns the vehicle repository.
func (s *NoOpTransactionScope) Vehicles() party.VehicleRepository {
	return s.vehicles
}

// Parties returns the party resolver.
func (s *NoOpTransactionScope) Parties() *party.Resolver {
	return s.parties
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
