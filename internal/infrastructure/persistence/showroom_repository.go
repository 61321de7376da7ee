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

// GormShowRoomRepository implements ShowRoomRepository using GORM
type GormShowRoomRepository struct {
	db *gorm.DB
}

// NewGormShowRoomRepository creates a new GormShowRoomRepository
func NewGormShowRoomRepository(db *gorm.DB) *GormShowRoomRepository {
	return &GormShowRoomRepository{db: db}
}

// FindByID finds a showroom by its ID
func (r *GormShowRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.ShowRoom, error) {
	var model models.ShowRoomModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByExternalID finds a showroom by its business-assigned external id.
// A missing showroom returns (nil, nil); receipts reference parties loosely
// and an unknown id simply leaves the receipt unlinked.
func (r *GormShowRoomRepository) FindByExternalID(ctx context.Context, showRoomID string) (*party.ShowRoom, error) {
	var model models.ShowRoomModel
	if err := r.db.WithContext(ctx).
		Where("show_room_id = ?", showRoomID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a showroom
func (r *GormShowRoomRepository) Save(ctx context.Context, showRoom *party.ShowRoom) error {
	model := models.ShowRoomModelFromDomain(showRoom)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a showroom
func (r *GormShowRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ShowRoomModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormShowRoomRepository implements ShowRoomRepository
var _ party.ShowRoomRepository = (*GormShowRoomRepository)(nil)
