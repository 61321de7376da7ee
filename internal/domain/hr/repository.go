package hr

import (
	"context"

	"github.com/google/uuid"
)

// EmployeeRepository defines persistence operations for employees
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Employee, error)
	Save(ctx context.Context, employee *Employee) error
}

// SalaryWithEmployee is a salary listing row with its employee joined in.
type SalaryWithEmployee struct {
	Salary   *Salary
	Employee *Employee
}

// SalarySearch carries the salary listing parameters. The listing always
// paginates.
type SalarySearch struct {
	EmployeeID *uuid.UUID
	Limit      int
	Page       int
}

// SalaryQuery is the read side of the salary collection, newest first.
type SalaryQuery interface {
	Search(ctx context.Context, q SalarySearch) ([]*SalaryWithEmployee, int64, error)
}

// SalaryRepository defines persistence operations for salary records
type SalaryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Salary, error)
	// FindByEmployeesAndMonths returns existing records matching any of the
	// given employees combined with any of the given months.
	FindByEmployeesAndMonths(ctx context.Context, employeeIDs []uuid.UUID, months []string) ([]Salary, error)
	FindByMonth(ctx context.Context, month string) ([]Salary, error)
	DistinctMonths(ctx context.Context, month string) ([]string, error)
	Save(ctx context.Context, salary *Salary) error
	Update(ctx context.Context, salary *Salary) error
	Delete(ctx context.Context, id uuid.UUID) error
}
