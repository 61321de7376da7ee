package party

import (
	"context"

	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines persistence operations for customers.
//
// FindByID fails with shared.ErrNotFound when the id does not exist.
// FindByExternalID returns (nil, nil) when no customer carries the id: the
// external id on a receipt is a loose reference and a miss means unlinked.
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByExternalID(ctx context.Context, customerID string) (*Customer, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyRepository defines persistence operations for companies. The
// lookup conventions match CustomerRepository: FindByID fails with
// shared.ErrNotFound, FindByExternalID returns (nil, nil) on a miss.
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByExternalID(ctx context.Context, companyID string) (*Company, error)
	Save(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateAllRecycled(ctx context.Context, recycled bool) (shared.BulkResult, error)
	// NextCompanySeq returns the next value of the business company-id
	// sequence.
	NextCompanySeq(ctx context.Context) (int64, error)
}

// CompanyWithVehicles is a company listing row with its fleet joined in.
type CompanyWithVehicles struct {
	Company  *Company
	Vehicles []*Vehicle
}

// CompanyQuery is the read side of the company collection. Text fields match
// by case-insensitive substring; the vehicle model matches numerically.
type CompanyQuery interface {
	Search(ctx context.Context, q shared.ListQuery) ([]*CompanyWithVehicles, int64, error)
}

// ShowRoomRepository defines persistence operations for showrooms. The
// lookup conventions match CustomerRepository: FindByID fails with
// shared.ErrNotFound, FindByExternalID returns (nil, nil) on a miss.
type ShowRoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShowRoom, error)
	FindByExternalID(ctx context.Context, showRoomID string) (*ShowRoom, error)
	Save(ctx context.Context, showRoom *ShowRoom) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleRepository defines persistence operations for vehicles.
//
// FindByID fails with shared.ErrNotFound when the id does not exist.
// FindByChassisNo returns (nil, nil) when no vehicle carries the number:
// receipts link to vehicles opportunistically and a miss means no linkage.
type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	FindByChassisNo(ctx context.Context, chassisNo string) (*Vehicle, error)
	// FindByOwnerRef lists the fleet keyed by the party's external id.
	FindByOwnerRef(ctx context.Context, externalID string) ([]*Vehicle, error)
	Save(ctx context.Context, vehicle *Vehicle) error
	// DeleteByOwnerRef removes every vehicle keyed by the party's external id
	// and returns how many were removed.
	DeleteByOwnerRef(ctx context.Context, externalID string) (int64, error)
}

// ReceiptIndex is the explicit join index between an owner party and its
// money receipts. It replaces per-party reference arrays: Attach is
// idempotent by construction, so no duplicate-checking is needed at call
// sites.
type ReceiptIndex interface {
	Attach(ctx context.Context, owner Owner, receiptID uuid.UUID) error
	Detach(ctx context.Context, owner Owner, receiptID uuid.UUID) error
	ReceiptIDs(ctx context.Context, owner Owner) ([]uuid.UUID, error)
}
