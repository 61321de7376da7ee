package party

import (
	"github.com/garage/backend/internal/domain/shared"
)

// ShowRoom is a dealership account that sends vehicles in for service.
type ShowRoom struct {
	shared.BaseAggregateRoot
	shared.Recyclable
	ShowRoomID  string `json:"showRoomId"` // business-assigned external id
	Name        string `json:"showRoom_name"`
	VehicleUser string `json:"vehicle_username"`
	Contact     string `json:"company_contact"`
	CountryCode string `json:"company_country_code"`
	Email       string `json:"company_email"`
	Address     string `json:"company_address"`
}

// NewShowRoom creates a new showroom
func NewShowRoom(showRoomID, name string) (*ShowRoom, error) {
	if showRoomID == "" {
		return nil, shared.NewDomainError("INVALID_SHOWROOM_ID", "Showroom id cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SHOWROOM_NAME", "Showroom name cannot be empty")
	}
	return &ShowRoom{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ShowRoomID:        showRoomID,
		Name:              name,
	}, nil
}

// Owner returns the resolved owner reference for this showroom.
func (s *ShowRoom) Owner() Owner {
	return Owner{Kind: OwnerKindShowRoom, PartyID: s.ID}
}
