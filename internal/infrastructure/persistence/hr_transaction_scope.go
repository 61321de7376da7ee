package persistence

import (
	"context"

	apphr "github.com/garage/backend/internal/application/hr"
	"github.com/garage/backend/internal/domain/hr"
	"gorm.io/gorm"
)

// GormHrTransactionScope implements the hr TransactionScope using GORM
// transactions. A salary batch validates and saves as one atomic unit, so a
// bad entry midway leaves no partial month recorded.
type GormHrTransactionScope struct {
	db *gorm.DB
}

// NewGormHrTransactionScope creates a new GormHrTransactionScope.
func NewGormHrTransactionScope(db *gorm.DB) *GormHrTransactionScope {
	return &GormHrTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormHrTransactionScope) Execute(ctx context.Context, fn func(repos apphr.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormHrRepositories{tx: tx}
		return fn(repos)
	})
}

// gormHrRepositories provides access to the hr repositories within a transaction.
type gormHrRepositories struct {
	tx *gorm.DB
}

// Employees returns the employee repository scoped to the current transaction.
func (r *gormHrRepositories) Employees() hr.EmployeeRepository {
	return NewGormEmployeeRepository(r.tx)
}

// Salaries returns the salary repository scoped to the current transaction.
func (r *gormHrRepositories) Salaries() hr.SalaryRepository {
	return NewGormSalaryRepository(r.tx)
}

// Ensure GormHrTransactionScope implements TransactionScope
var _ apphr.TransactionScope = (*GormHrTransactionScope)(nil)

// Ensure gormHrRepositories implements TransactionalRepositories
var _ apphr.TransactionalRepositories = (*gormHrRepositories)(nil)
