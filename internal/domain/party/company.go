package party

import (
	"github.com/garage/backend/internal/domain/shared"
)

// Company is a corporate account. A company owns a fleet of vehicles keyed by
// its external id; deleting the company cascades to those vehicles.
type Company struct {
	shared.BaseAggregateRoot
	shared.Recyclable
	CompanyID   string    `json:"companyId"` // business-assigned external id
	UserType    OwnerKind `json:"user_type"`
	Name        string    `json:"company_name"`
	VehicleUser string    `json:"vehicle_username"`
	Contact     string    `json:"company_contact"`
	CountryCode string    `json:"company_country_code"`
	Email       string    `json:"company_email"`
	Address     string    `json:"company_address"`
}

// NewCompany creates a new company
func NewCompany(companyID, name string, userType OwnerKind) (*Company, error) {
	if companyID == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_ID", "Company id cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if userType != "" && !userType.IsValid() {
		return nil, shared.NewDomainError("INVALID_USER_TYPE", "User type is not valid")
	}
	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CompanyID:         companyID,
		UserType:          userType,
		Name:              name,
	}, nil
}

// Owner returns the resolved owner reference for this company.
func (c *Company) Owner() Owner {
	return Owner{Kind: OwnerKindCompany, PartyID: c.ID}
}
