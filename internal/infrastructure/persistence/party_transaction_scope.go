package persistence

import (
	"context"

	appparty "github.com/garage/backend/internal/application/party"
	"github.com/garage/backend/internal/domain/party"
	"gorm.io/gorm"
)

// GormPartyTransactionScope implements the party TransactionScope using GORM
// transactions. Company creation saves the company and binds its first
// vehicle in one atomic unit; company deletion cascades to the fleet.
type GormPartyTransactionScope struct {
	db *gorm.DB
}

// NewGormPartyTransactionScope creates a new GormPartyTransactionScope.
func NewGormPartyTransactionScope(db *gorm.DB) *GormPartyTransactionScope {
	return &GormPartyTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormPartyTransactionScope) Execute(ctx context.Context, fn func(repos appparty.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormPartyRepositories{tx: tx}
		return fn(repos)
	})
}

// gormPartyRepositories provides access to the party repositories within a transaction.
type gormPartyRepositories struct {
	tx *gorm.DB
}

// Companies returns the company repository scoped to the current transaction.
func (r *gormPartyRepositories) Companies() party.CompanyRepository {
	return NewGormCompanyRepository(r.tx)
}

// Vehicles returns the vehicle repository scoped to the current transaction.
func (r *gormPartyRepositories) Vehicles() party.VehicleRepository {
	return NewGormVehicleRepository(r.tx)
}

// Ensure GormPartyTransactionScope implements TransactionScope
var _ appparty.TransactionScope = (*GormPartyTransactionScope)(nil)

// Ensure gormPartyRepositories implements TransactionalRepositories
var _ appparty.TransactionalRepositories = (*gormPartyRepositories)(nil)
