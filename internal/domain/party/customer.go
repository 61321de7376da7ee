package party

import (
	"github.com/garage/backend/internal/domain/shared"
)

// Customer is an individual client of the workshop. It owns vehicles and
// money receipts through its business-assigned external id.
type Customer struct {
	shared.BaseAggregateRoot
	shared.Recyclable
	CustomerID     string `json:"customerId"` // business-assigned external id
	Name           string `json:"customer_name"`
	Contact        string `json:"customer_contact"`
	CountryCode    string `json:"customer_country_code"`
	Email          string `json:"customer_email"`
	Address        string `json:"customer_address"`
	DrivingLicense string `json:"driver_license_no"`
}

// NewCustomer creates a new customer
func NewCustomer(customerID, name string) (*Customer, error) {
	if customerID == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ID", "Customer id cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Name:              name,
	}, nil
}

// Owner returns the resolved owner reference for this customer.
func (c *Customer) Owner() Owner {
	return Owner{Kind: OwnerKindCustomer, PartyID: c.ID}
}
