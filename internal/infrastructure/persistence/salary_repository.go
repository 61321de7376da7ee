package persistence

import (
	"context"
	"errors"

	"github.com/garage/backend/internal/domain/hr"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/garage/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSalaryRepository implements SalaryRepository using GORM
type GormSalaryRepository struct {
	db *gorm.DB
}

// NewGormSalaryRepository creates a new GormSalaryRepository
func NewGormSalaryRepository(db *gorm.DB) *GormSalaryRepository {
	return &GormSalaryRepository{db: db}
}

// FindByID finds a salary record by its ID
func (r *GormSalaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Salary, error) {
	var model models.SalaryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmployeesAndMonths returns existing records matching any of the given
// employees combined with any of the given months.
func (r *GormSalaryRepository) FindByEmployeesAndMonths(ctx context.Context, employeeIDs []uuid.UUID, months []string) ([]hr.Salary, error) {
	if len(employeeIDs) == 0 || len(months) == 0 {
		return []hr.Salary{}, nil
	}

	var salaryModels []models.SalaryModel
	if err := r.db.WithContext(ctx).
		Where("employee_id IN ? AND month_of_salary IN ?", employeeIDs, months).
		Find(&salaryModels).Error; err != nil {
		return nil, err
	}
	return toDomainSalaries(salaryModels), nil
}

// FindByMonth finds all salary records for a month, newest first
func (r *GormSalaryRepository) FindByMonth(ctx context.Context, month string) ([]hr.Salary, error) {
	var salaryModels []models.SalaryModel
	if err := r.db.WithContext(ctx).
		Where("month_of_salary = ?", month).
		Order("created_at DESC").
		Find(&salaryModels).Error; err != nil {
		return nil, err
	}
	return toDomainSalaries(salaryModels), nil
}

// DistinctMonths lists the distinct month labels matching the term by
// case-insensitive substring.
func (r *GormSalaryRepository) DistinctMonths(ctx context.Context, month string) ([]string, error) {
	var months []string
	if err := r.db.WithContext(ctx).
		Model(&models.SalaryModel{}).
		Distinct("month_of_salary").
		Where("month_of_salary ILIKE ?", "%"+escapeLike(month)+"%").
		Order("month_of_salary ASC").
		Pluck("month_of_salary", &months).Error; err != nil {
		return nil, err
	}
	return months, nil
}

// Save creates a salary record
func (r *GormSalaryRepository) Save(ctx context.Context, salary *hr.Salary) error {
	model := models.SalaryModelFromDomain(salary)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing salary record
func (r *GormSalaryRepository) Update(ctx context.Context, salary *hr.Salary) error {
	model := models.SalaryModelFromDomain(salary)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a salary record
func (r *GormSalaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SalaryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainSalaries(salaryModels []models.SalaryModel) []hr.Salary {
	salaries := make([]hr.Salary, len(salaryModels))
	for i := range salaryModels {
		salaries[i] = *salaryModels[i].ToDomain()
	}
	return salaries
}

// Ensure GormSalaryRepository implements SalaryRepository
var _ hr.SalaryRepository = (*GormSalaryRepository)(nil)
