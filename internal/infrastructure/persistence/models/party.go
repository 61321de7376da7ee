package models

import (
	"github.com/garage/backend/internal/domain/party"
	"github.com/google/uuid"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AggregateModel
	RecyclableModel
	CustomerID     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string `gorm:"type:varchar(200);not null"`
	Contact        string `gorm:"type:varchar(50);index"`
	CountryCode    string `gorm:"type:varchar(10)"`
	Email          string `gorm:"type:varchar(200)"`
	Address        string `gorm:"type:text"`
	DrivingLicense string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *party.Customer {
	return &party.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Recyclable:        m.ToDomainRecyclable(),
		CustomerID:        m.CustomerID,
		Name:              m.Name,
		Contact:           m.Contact,
		CountryCode:       m.CountryCode,
		Email:             m.Email,
		Address:           m.Address,
		DrivingLicense:    m.DrivingLicense,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *party.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.FromDomainRecyclable(c.Recyclable)
	m.CustomerID = c.CustomerID
	m.Name = c.Name
	m.Contact = c.Contact
	m.CountryCode = c.CountryCode
	m.Email = c.Email
	m.Address = c.Address
	m.DrivingLicense = c.DrivingLicense
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *party.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	AggregateModel
	RecyclableModel
	CompanyID   string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	UserType    party.OwnerKind `gorm:"type:varchar(20)"`
	Name        string          `gorm:"type:varchar(200);not null"`
	VehicleUser string          `gorm:"type:varchar(200)"`
	Contact     string          `gorm:"type:varchar(50);index"`
	CountryCode string          `gorm:"type:varchar(10)"`
	Email       string          `gorm:"type:varchar(200)"`
	Address     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *party.Company {
	return &party.Company{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Recyclable:        m.ToDomainRecyclable(),
		CompanyID:         m.CompanyID,
		UserType:          m.UserType,
		Name:              m.Name,
		VehicleUser:       m.VehicleUser,
		Contact:           m.Contact,
		CountryCode:       m.CountryCode,
		Email:             m.Email,
		Address:           m.Address,
	}
}

// FromDomain populates the persistence model from a domain Company entity.
func (m *CompanyModel) FromDomain(c *party.Company) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.FromDomainRecyclable(c.Recyclable)
	m.CompanyID = c.CompanyID
	m.UserType = c.UserType
	m.Name = c.Name
	m.VehicleUser = c.VehicleUser
	m.Contact = c.Contact
	m.CountryCode = c.CountryCode
	m.Email = c.Email
	m.Address = c.Address
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *party.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// ShowRoomModel is the persistence model for the ShowRoom domain entity.
type ShowRoomModel struct {
	AggregateModel
	RecyclableModel
	ShowRoomID  string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(200);not null"`
	VehicleUser string `gorm:"type:varchar(200)"`
	Contact     string `gorm:"type:varchar(50);index"`
	CountryCode string `gorm:"type:varchar(10)"`
	Email       string `gorm:"type:varchar(200)"`
	Address     string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ShowRoomModel) TableName() string {
	return "showrooms"
}

// ToDomain converts the persistence model to a domain ShowRoom entity.
func (m *ShowRoomModel) ToDomain() *party.ShowRoom {
	return &party.ShowRoom{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Recyclable:        m.ToDomainRecyclable(),
		ShowRoomID:        m.ShowRoomID,
		Name:              m.Name,
		VehicleUser:       m.VehicleUser,
		Contact:           m.Contact,
		CountryCode:       m.CountryCode,
		Email:             m.Email,
		Address:           m.Address,
	}
}

// FromDomain populates the persistence model from a domain ShowRoom entity.
func (m *ShowRoomModel) FromDomain(s *party.ShowRoom) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.FromDomainRecyclable(s.Recyclable)
	m.ShowRoomID = s.ShowRoomID
	m.Name = s.Name
	m.VehicleUser = s.VehicleUser
	m.Contact = s.Contact
	m.CountryCode = s.CountryCode
	m.Email = s.Email
	m.Address = s.Address
}

// ShowRoomModelFromDomain creates a new persistence model from a domain ShowRoom entity.
func ShowRoomModelFromDomain(s *party.ShowRoom) *ShowRoomModel {
	m := &ShowRoomModel{}
	m.FromDomain(s)
	return m
}

// VehicleModel is the persistence model for the Vehicle domain entity.
// OwnerRefID carries the owning party's external id; OwnerPartyID is the
// resolved uuid, null while unowned.
type VehicleModel struct {
	AggregateModel
	ChassisNo    string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	FullRegNo    string          `gorm:"type:varchar(100);index"`
	VehicleName  string          `gorm:"type:varchar(200)"`
	VehicleModel int             `gorm:"not null;default:0"`
	OwnerKind    party.OwnerKind `gorm:"type:varchar(20)"`
	OwnerRefID   string          `gorm:"type:varchar(50);index"`
	OwnerPartyID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToDomain converts the persistence model to a domain Vehicle entity.
func (m *VehicleModel) ToDomain() *party.Vehicle {
	v := &party.Vehicle{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ChassisNo:         m.ChassisNo,
		FullRegNo:         m.FullRegNo,
		VehicleName:       m.VehicleName,
		VehicleModel:      m.VehicleModel,
		OwnerKind:         m.OwnerKind,
		OwnerRefID:        m.OwnerRefID,
	}
	if m.OwnerPartyID != nil {
		v.OwnerPartyID = *m.OwnerPartyID
	}
	return v
}

// FromDomain populates the persistence model from a domain Vehicle entity.
func (m *VehicleModel) FromDomain(v *party.Vehicle) {
	m.FromDomainAggregateRoot(v.BaseAggregateRoot)
	m.ChassisNo = v.ChassisNo
	m.FullRegNo = v.FullRegNo
	m.VehicleName = v.VehicleName
	m.VehicleModel = v.VehicleModel
	m.OwnerKind = v.OwnerKind
	m.OwnerRefID = v.OwnerRefID
	if v.OwnerPartyID != uuid.Nil {
		id := v.OwnerPartyID
		m.OwnerPartyID = &id
	} else {
		m.OwnerPartyID = nil
	}
}

// VehicleModelFromDomain creates a new persistence model from a domain Vehicle entity.
func VehicleModelFromDomain(v *party.Vehicle) *VehicleModel {
	m := &VehicleModel{}
	m.FromDomain(v)
	return m
}

// OwnerReceiptModel is the join row between an owner party and one of its
// money receipts. The composite primary key makes Attach idempotent.
type OwnerReceiptModel struct {
	OwnerKind party.OwnerKind `gorm:"type:varchar(20);primaryKey"`
	PartyID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReceiptID uuid.UUID       `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for GORM
func (OwnerReceiptModel) TableName() string {
	return "owner_receipts"
}
