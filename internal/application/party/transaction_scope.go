package party

import (
	"context"

	"github.com/garage/backend/internal/domain/party"
)

// TransactionScope provides transactional access to the party repositories.
// All repository operations inside Execute commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the party repositories within
// a transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// Companies returns the company repository scoped to the current transaction
	Companies() party.CompanyRepository
	// Vehicles returns the vehicle repository scoped to the current transaction
	Vehicles() party.VehicleRepository
}

// NoOpTransactionScope is a transaction scope without real transactions, for
// tests.
type NoOpTransactionScope struct {
	companies party.CompanyRepository
	vehicles  party.VehicleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	companies party.CompanyRepository,
	vehicles party.VehicleRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{companies: companies, vehicles: vehicles}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Companies returns the company repository.
func (s *NoOpTransactionScope) Companies() party.CompanyRepository {
	return s.companies
}

// Vehicles returns the vehicle repository.
func (s *NoOpTransactionScope) Vehicles() party.VehicleRepository {
	return s.vehicles
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
