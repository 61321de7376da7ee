package hr

import (
	"context"

	"github.com/garage/backend/internal/domain/hr"
)

// TransactionScope provides transactional access to the hr repositories.
// All repository operations inside Execute commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the hr repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// Employees returns the employee repository scoped to the current transaction
	Employees() hr.EmployeeRepository
	// Salaries returns the salary repository scoped to the current transaction
	Salaries() hr.SalaryRepository
}

// NoOpTransactionScope is a transaction scope without real transactions, for
// tests.
type NoOpTransactionScope struct {
	employees hr.EmployeeRepository
	salaries  hr.SalaryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	employees hr.EmployeeRepository,
	salaries hr.SalaryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{employees: employees, salaries: salaries}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Employees returns the employee repository.
func (s *NoOpTransactionScope) Employees() hr.EmployeeRepository {
	return s.employees
}

// Salaries returns the salary repository.
func (s *NoOpTransactionScope) Salaries() hr.SalaryRepository {
	return s.salaries
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
