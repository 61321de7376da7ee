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

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds multiple employees by their IDs
func (r *GormEmployeeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]hr.Employee, error) {
	if len(ids) == 0 {
		return []hr.Employee{}, nil
	}

	var employeeModels []models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&employeeModels).Error; err != nil {
		return nil, err
	}

	employees := make([]hr.Employee, len(employeeModels))
	for i := range employeeModels {
		employees[i] = *employeeModels[i].ToDomain()
	}
	return employees, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *hr.Employee) error {
	model := models.EmployeeModelFromDomain(employee)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormEmployeeRepository implements EmployeeRepository
var _ hr.EmployeeRepository = (*GormEmployeeRepository)(nil)
