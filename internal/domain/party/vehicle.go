package party

import (
	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Vehicle belongs to at most one party, referenced by the party's external id
// plus the owner kind. The chassis number is the unique business key.
type Vehicle struct {
	shared.BaseAggregateRoot
	ChassisNo    string    `json:"chassis_no"`
	FullRegNo    string    `json:"full_reg_number"`
	VehicleName  string    `json:"vehicle_name"`
	VehicleModel int       `json:"vehicle_model"`
	OwnerKind    OwnerKind `json:"user_type"`
	OwnerRefID   string    `json:"Id"` // owning party's external id
	OwnerPartyID uuid.UUID `json:"-"`  // resolved party uuid, Nil when unowned
}

// NewVehicle creates a new vehicle
func NewVehicle(chassisNo string) (*Vehicle, error) {
	if chassisNo == "" {
		return nil, shared.NewDomainError("INVALID_CHASSIS_NO", "Chassis number cannot be empty")
	}
	return &Vehicle{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ChassisNo:         chassisNo,
	}, nil
}

// AssignOwner binds the vehicle to a party by kind, external id and resolved identity.
func (v *Vehicle) AssignOwner(kind OwnerKind, externalID string, partyID uuid.UUID) error {
	if !kind.IsValid() {
		return shared.NewDomainError("INVALID_USER_TYPE", "User type is not valid")
	}
	v.OwnerKind = kind
	v.OwnerRefID = externalID
	v.OwnerPartyID = partyID
	return nil
}
