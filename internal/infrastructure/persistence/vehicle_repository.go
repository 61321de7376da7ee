package persistence

import (
	"context"
	"errors"

	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/garage/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// FindByID finds a vehicle by its ID
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByChassisNo finds a vehicle by its chassis number. A missing vehicle
// returns (nil, nil); receipt and company writes treat an unknown chassis
// number as no linkage, not a failure.
func (r *GormVehicleRepository) FindByChassisNo(ctx context.Context, chassisNo string) (*party.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).
		Where("chassis_no = ?", chassisNo).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwnerRef lists the fleet keyed by the owning party's external id
func (r *GormVehicleRepository) FindByOwnerRef(ctx context.Context, externalID string) ([]*party.Vehicle, error) {
	var vehicleModels []models.VehicleModel
	if err := r.db.WithContext(ctx).
		Where("owner_ref_id = ?", externalID).
		Order("created_at ASC").
		Find(&vehicleModels).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*party.Vehicle, len(vehicleModels))
	for i := range vehicleModels {
		vehicles[i] = vehicleModels[i].ToDomain()
	}
	return vehicles, nil
}

// Save creates or updates a vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, vehicle *party.Vehicle) error {
	model := models.VehicleModelFromDomain(vehicle)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteByOwnerRef removes every vehicle keyed by the owning party's external
// id and reports how many rows went away.
func (r *GormVehicleRepository) DeleteByOwnerRef(ctx context.Context, externalID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&models.VehicleModel{}, "owner_ref_id = ?", externalID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ party.VehicleRepository = (*GormVehicleRepository)(nil)
