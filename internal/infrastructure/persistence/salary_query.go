package persistence

import (
	"context"

	"github.com/garage/backend/internal/domain/hr"
	"github.com/garage/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSalaryQuery implements the salary read side using GORM. Rows carry the
// salary plus its employee; the join happens here so the application layer
// stays free of persistence concerns.
type GormSalaryQuery struct {
	db *gorm.DB
}

// NewGormSalaryQuery creates a new GormSalaryQuery
func NewGormSalaryQuery(db *gorm.DB) *GormSalaryQuery {
	return &GormSalaryQuery{db: db}
}

// Search returns the matching page of salary records newest first, each with
// its employee, plus the total match count.
func (q *GormSalaryQuery) Search(ctx context.Context, search hr.SalarySearch) ([]*hr.SalaryWithEmployee, int64, error) {
	base := q.db.WithContext(ctx).Model(&models.SalaryModel{})
	if search.EmployeeID != nil {
		base = base.Where("employee_id = ?", *search.EmployeeID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := base.Session(&gorm.Session{}).Order("created_at DESC")
	if search.Limit > 0 && search.Page > 0 {
		listQuery = listQuery.Offset((search.Page - 1) * search.Limit).Limit(search.Limit)
	}

	var salaryModels []models.SalaryModel
	if err := listQuery.Find(&salaryModels).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]*hr.SalaryWithEmployee, len(salaryModels))
	if len(salaryModels) == 0 {
		return rows, total, nil
	}

	employeeIDs := make([]uuid.UUID, 0, len(salaryModels))
	seen := make(map[uuid.UUID]bool, len(salaryModels))
	for i := range salaryModels {
		id := salaryModels[i].EmployeeID
		if !seen[id] {
			seen[id] = true
			employeeIDs = append(employeeIDs, id)
		}
	}

	var employeeModels []models.EmployeeModel
	if err := q.db.WithContext(ctx).
		Where("id IN ?", employeeIDs).
		Find(&employeeModels).Error; err != nil {
		return nil, 0, err
	}

	employees := make(map[uuid.UUID]*hr.Employee, len(employeeModels))
	for i := range employeeModels {
		e := employeeModels[i].ToDomain()
		employees[e.ID] = e
	}

	for i := range salaryModels {
		salary := salaryModels[i].ToDomain()
		rows[i] = &hr.SalaryWithEmployee{
			Salary:   salary,
			Employee: employees[salary.EmployeeID],
		}
	}
	return rows, total, nil
}

// Ensure GormSalaryQuery implements SalaryQuery
var _ hr.SalaryQuery = (*GormSalaryQuery)(nil)
