package models

import (
	"time"

	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel provides common persistence fields for aggregate roots.
// It extends BaseModel with version for optimistic locking.
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// ToDomainAggregateRoot converts AggregateModel to domain BaseAggregateRoot
func (m *AggregateModel) ToDomainAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Version: m.Version,
	}
}

// RecyclableModel provides the recycle-bin columns shared by soft-deletable
// models.
type RecyclableModel struct {
	IsRecycled bool       `gorm:"not null;default:false;index"`
	RecycledAt *time.Time `gorm:""`
}

// FromDomainRecyclable populates RecyclableModel from the domain state
func (m *RecyclableModel) FromDomainRecyclable(r shared.Recyclable) {
	m.IsRecycled = r.IsRecycled
	m.RecycledAt = r.RecycledAt
}

// ToDomainRecyclable converts RecyclableModel to the domain state
func (m *RecyclableModel) ToDomainRecyclable() shared.Recyclable {
	return shared.Recyclable{
		IsRecycled: m.IsRecycled,
		RecycledAt: m.RecycledAt,
	}
}
