package hr

import (
	"context"
	"fmt"
	"time"

	"github.com/garage/backend/internal/domain/hr"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SalaryService records monthly pay for employees. Bulk creation is
// all-or-nothing: one missing employee or duplicate month aborts the whole
// batch.
type SalaryService struct {
	scope    TransactionScope
	salaries hr.SalaryRepository
	query    hr.SalaryQuery
	logger   *zap.Logger
}

// NewSalaryService creates a new SalaryService
func NewSalaryService(
	scope TransactionScope,
	salaries hr.SalaryRepository,
	query hr.SalaryQuery,
	logger *zap.Logger,
) *SalaryService {
	return &SalaryService{
		scope:    scope,
		salaries: salaries,
		query:    query,
		logger:   logger,
	}
}

// SalaryEntry is one record of a bulk salary payload.
type SalaryEntry struct {
	EmployeeID    uuid.UUID       `json:"employee" binding:"required"`
	MonthOfSalary string          `json:"month_of_salary" binding:"required"`
	BonusFestival decimal.Decimal `json:"bonus_festival"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
	Advance       decimal.Decimal `json:"advance"`
	Pay           decimal.Decimal `json:"pay"`
	Due           decimal.Decimal `json:"due"`
}

// SalaryResponse is the salary read model.
type SalaryResponse struct {
	ID            uuid.UUID         `json:"id"`
	EmployeeID    uuid.UUID         `json:"employee"`
	Employee      *EmployeeResponse `json:"employee_details,omitempty"`
	MonthOfSalary string            `json:"month_of_salary"`
	BonusFestival decimal.Decimal   `json:"bonus_festival"`
	TotalPayment  decimal.Decimal   `json:"total_payment"`
	Advance       decimal.Decimal   `json:"advance"`
	Pay           decimal.Decimal   `json:"pay"`
	Due           decimal.Decimal   `json:"due"`
	CreatedAt     string            `json:"createdAt"`
}

// EmployeeResponse is the employee read model.
type EmployeeResponse struct {
	ID          uuid.UUID `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Name        string    `json:"full_name"`
	Designation string    `json:"designation"`
	Contact     string    `json:"phone_number"`
}

// MonthSalaries groups one month's salary records.
type MonthSalaries struct {
	Month    string            `json:"month"`
	Salaries []*SalaryResponse `json:"salaries"`
}

// ListSalariesResponse is a page of salaries plus its meta.
type ListSalariesResponse struct {
	Salaries []*SalaryResponse `json:"salaries"`
	Meta     shared.PageMeta   `json:"meta"`
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func toSalaryResponse(s *hr.Salary, e *hr.Employee) *SalaryResponse {
	resp := &SalaryResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		MonthOfSalary: s.MonthOfSalary,
		BonusFestival: s.BonusFestival,
		TotalPayment:  s.TotalPayment,
		Advance:       s.Advance,
		Pay:           s.Pay,
		Due:           s.Due,
		CreatedAt:     s.CreatedAt.Format(timeLayout),
	}
	if e != nil {
		resp.Employee = &EmployeeResponse{
			ID:          e.ID,
			EmployeeID:  e.EmployeeID,
			Name:        e.Name,
			Designation: e.Designation,
			Contact:     e.Contact,
		}
	}
	return resp
}

// CreateBulk records a batch of monthly salaries in one transaction. Every
// entry's employee must exist and no entry may duplicate an existing
// employee+month pair; the first violation rolls back the batch and nothing
// is recorded.
func (s *SalaryService) CreateBulk(ctx context.Context, entries []SalaryEntry) error {
	if len(entries) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "Salary payload cannot be empty")
	}

	employeeIDs := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]bool)
	months := make([]string, 0, len(entries))
	for _, e := range entries {
		if !seen[e.EmployeeID] {
			seen[e.EmployeeID] = true
			employeeIDs = append(employeeIDs, e.EmployeeID)
		}
		months = append(months, e.MonthOfSalary)
	}

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		employees, err := repos.Employees().FindByIDs(ctx, employeeIDs)
		if err != nil {
			return fmt.Errorf("failed to fetch employees: %w", err)
		}
		employeeByID := make(map[uuid.UUID]*hr.Employee, len(employees))
		for i := range employees {
			employeeByID[employees[i].ID] = &employees[i]
		}

		existing, err := repos.Salaries().FindByEmployeesAndMonths(ctx, employeeIDs, months)
		if err != nil {
			return fmt.Errorf("failed to fetch existing salaries: %w", err)
		}
		existingKeys := make(map[string]bool, len(existing))
		for i := range existing {
			existingKeys[salaryKey(existing[i].EmployeeID, existing[i].MonthOfSalary)] = true
		}

		for _, entry := range entries {
			if _, ok := employeeByID[entry.EmployeeID]; !ok {
				return shared.NewDomainError("NOT_FOUND",
					fmt.Sprintf("Employee with ID %s not found", entry.EmployeeID))
			}
			if existingKeys[salaryKey(entry.EmployeeID, entry.MonthOfSalary)] {
				return shared.NewDomainError("CONFLICT", "Salary already added in this month")
			}

			salary, err := hr.NewSalary(entry.EmployeeID, entry.MonthOfSalary, entry.TotalPayment)
			if err != nil {
				return err
			}
			salary.BonusFestival = entry.BonusFestival
			salary.Advance = entry.Advance
			salary.Pay = entry.Pay
			salary.Due = entry.Due

			if err := repos.Salaries().Save(ctx, salary); err != nil {
				return fmt.Errorf("failed to save salary: %w", err)
			}
			existingKeys[salaryKey(entry.EmployeeID, entry.MonthOfSalary)] = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("salary batch recorded", zap.Int("entries", len(entries)))
	return nil
}

// CurrentMonth lists salaries grouped by month. Without a search term the
// current calendar month is used; a term overrides the month filter.
func (s *SalaryService) CurrentMonth(ctx context.Context, searchTerm string) ([]*MonthSalaries, error) {
	month := hr.MonthName(int(time.Now().Month()))
	if searchTerm != "" {
		month = searchTerm
	}

	months, err := s.salaries.DistinctMonths(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list months: %w", err)
	}

	results := make([]*MonthSalaries, 0, len(months))
	for _, m := range months {
		salaries, err := s.salaries.FindByMonth(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("failed to list salaries for %s: %w", m, err)
		}
		if len(salaries) == 0 {
			return nil, shared.NewDomainError("NOT_FOUND",
				fmt.Sprintf("No salary found for: %s", m))
		}

		group := &MonthSalaries{Month: m}
		for i := range salaries {
			group.Salaries = append(group.Salaries, toSalaryResponse(&salaries[i], nil))
		}
		results = append(results, group)
	}

	if len(results) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("No salary data exist within %s month", month))
	}
	return results, nil
}

// List returns a page of salaries with their employees, newest first,
// optionally narrowed to one employee.
func (s *SalaryService) List(ctx context.Context, employeeID *uuid.UUID, limit, page int) (*ListSalariesResponse, error) {
	rows, total, err := s.query.Search(ctx, hr.SalarySearch{
		EmployeeID: employeeID,
		Limit:      limit,
		Page:       page,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}

	salaries := make([]*SalaryResponse, len(rows))
	for i, row := range rows {
		salaries[i] = toSalaryResponse(row.Salary, row.Employee)
	}

	return &ListSalariesResponse{
		Salaries: salaries,
		Meta:     shared.NewPageMeta(total, limit, page),
	}, nil
}

// Update rewrites the amount fields of one salary record.
func (s *SalaryService) Update(ctx context.Context, id uuid.UUID, entry SalaryEntry) (*SalaryResponse, error) {
	salary, err := s.salaries.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary: %w", err)
	}

	if entry.MonthOfSalary != "" {
		salary.MonthOfSalary = entry.MonthOfSalary
	}
	salary.BonusFestival = entry.BonusFestival
	salary.TotalPayment = entry.TotalPayment
	salary.Advance = entry.Advance
	salary.Pay = entry.Pay
	salary.Due = entry.Due

	if err := s.salaries.Update(ctx, salary); err != nil {
		return nil, fmt.Errorf("failed to update salary: %w", err)
	}
	return toSalaryResponse(salary, nil), nil
}

// Delete removes one salary record.
func (s *SalaryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.salaries.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete salary: %w", err)
	}
	return nil
}

func salaryKey(employeeID uuid.UUID, month string) string {
	return employeeID.String() + "-" + month
}
