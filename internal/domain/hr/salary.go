package hr

import (
	"time"

	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Salary is one month's pay record for an employee. At most one record may
// exist per employee and month.
type Salary struct {
	shared.BaseAggregateRoot
	EmployeeID    uuid.UUID       `json:"-"`
	MonthOfSalary string          `json:"month_of_salary"`
	BonusFestival decimal.Decimal `json:"bonus_festival"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
	Advance       decimal.Decimal `json:"advance"`
	Pay           decimal.Decimal `json:"pay"`
	Due           decimal.Decimal `json:"due"`
}

// NewSalary creates a new salary record
func NewSalary(employeeID uuid.UUID, monthOfSalary string, totalPayment decimal.Decimal) (*Salary, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	if monthOfSalary == "" {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month of salary cannot be empty")
	}
	return &Salary{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeID:        employeeID,
		MonthOfSalary:     monthOfSalary,
		TotalPayment:      totalPayment,
	}, nil
}

// MonthName returns the English month name for a 1-based month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}
