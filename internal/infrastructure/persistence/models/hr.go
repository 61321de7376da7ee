package models

import (
	"github.com/garage/backend/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	AggregateModel
	EmployeeID  string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(200);not null"`
	Designation string `gorm:"type:varchar(100)"`
	Contact     string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *hr.Employee {
	return &hr.Employee{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		EmployeeID:        m.EmployeeID,
		Name:              m.Name,
		Designation:       m.Designation,
		Contact:           m.Contact,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *hr.Employee) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.EmployeeID = e.EmployeeID
	m.Name = e.Name
	m.Designation = e.Designation
	m.Contact = e.Contact
}

// EmployeeModelFromDomain creates a new persistence model from a domain Employee entity.
func EmployeeModelFromDomain(e *hr.Employee) *EmployeeModel {
	m := &EmployeeModel{}
	m.FromDomain(e)
	return m
}

// SalaryModel is the persistence model for the Salary domain entity. The
// employee and month pair is unique.
type SalaryModel struct {
	AggregateModel
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_salary_employee_month,priority:1"`
	MonthOfSalary string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_salary_employee_month,priority:2;index"`
	BonusFestival decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalPayment  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Advance       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Pay           decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Due           decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (SalaryModel) TableName() string {
	return "salaries"
}

// ToDomain converts the persistence model to a domain Salary entity.
func (m *SalaryModel) ToDomain() *hr.Salary {
	return &hr.Salary{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		EmployeeID:        m.EmployeeID,
		MonthOfSalary:     m.MonthOfSalary,
		BonusFestival:     m.BonusFestival,
		TotalPayment:      m.TotalPayment,
		Advance:           m.Advance,
		Pay:               m.Pay,
		Due:               m.Due,
	}
}

// FromDomain populates the persistence model from a domain Salary entity.
func (m *SalaryModel) FromDomain(s *hr.Salary) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.EmployeeID = s.EmployeeID
	m.MonthOfSalary = s.MonthOfSalary
	m.BonusFestival = s.BonusFestival
	m.TotalPayment = s.TotalPayment
	m.Advance = s.Advance
	m.Pay = s.Pay
	m.Due = s.Due
}

// SalaryModelFromDomain creates a new persistence model from a domain Salary entity.
func SalaryModelFromDomain(s *hr.Salary) *SalaryModel {
	m := &SalaryModel{}
	m.FromDomain(s)
	return m
}
