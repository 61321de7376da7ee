package hr

import (
	"github.com/garage/backend/internal/domain/shared"
)

// Employee is a workshop staff member salaries are recorded against.
type Employee struct {
	shared.BaseAggregateRoot
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"full_name"`
	Designation string `json:"designation"`
	Contact     string `json:"phone_number"`
}

// NewEmployee creates a new employee
func NewEmployee(employeeID, name string) (*Employee, error) {
	if employeeID == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_ID", "Employee id cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_NAME", "Employee name cannot be empty")
	}
	return &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeID:        employeeID,
		Name:              name,
	}, nil
}
