package party

import (
	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyPayload carries the company form fields.
type CompanyPayload struct {
	UserType    string `json:"user_type" binding:"omitempty,oneof=customer company showRoom"`
	Name        string `json:"company_name" binding:"required"`
	VehicleUser string `json:"vehicle_username"`
	Contact     string `json:"company_contact"`
	CountryCode string `json:"company_country_code"`
	Email       string `json:"company_email"`
	Address     string `json:"company_address"`
}

// VehiclePayload carries the vehicle form fields.
type VehiclePayload struct {
	ChassisNo    string `json:"chassis_no" binding:"required"`
	FullRegNo    string `json:"full_reg_number"`
	VehicleName  string `json:"vehicle_name"`
	VehicleModel int    `json:"vehicle_model"`
}

// CreateCompanyRequest pairs the company with its first vehicle. The vehicle
// is mandatory at creation and binds to the company's external id.
type CreateCompanyRequest struct {
	Company CompanyPayload  `json:"company" binding:"required"`
	Vehicle *VehiclePayload `json:"vehicle"`
}

// UpdateCompanyRequest updates the company and optionally upserts one vehicle
// by chassis number.
type UpdateCompanyRequest struct {
	Company CompanyPayload  `json:"company"`
	Vehicle *VehiclePayload `json:"vehicle"`
}

// VehicleResponse is the vehicle read model.
type VehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	ChassisNo    string    `json:"chassis_no"`
	FullRegNo    string    `json:"full_reg_number"`
	VehicleName  string    `json:"vehicle_name"`
	VehicleModel int       `json:"vehicle_model"`
	UserType     string    `json:"user_type,omitempty"`
	OwnerRefID   string    `json:"Id,omitempty"`
}

// CompanyResponse is the company read model.
type CompanyResponse struct {
	ID          uuid.UUID          `json:"id"`
	CompanyID   string             `json:"companyId"`
	UserType    string             `json:"user_type,omitempty"`
	Name        string             `json:"company_name"`
	VehicleUser string             `json:"vehicle_username,omitempty"`
	Contact     string             `json:"company_contact,omitempty"`
	CountryCode string             `json:"company_country_code,omitempty"`
	Email       string             `json:"company_email,omitempty"`
	Address     string             `json:"company_address,omitempty"`
	Vehicles    []*VehicleResponse `json:"vehicles,omitempty"`
	IsRecycled  bool               `json:"isRecycled"`
	RecycledAt  *string            `json:"recycledAt,omitempty"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
}

// CompanyDetailResponse is the single-company read model with the ids of its
// money receipts.
type CompanyDetailResponse struct {
	*CompanyResponse
	MoneyReceiptIDs []uuid.UUID `json:"money_receipts"`
}

// ListCompaniesResponse is a page of companies plus its meta. The meta
// carries the explicit page-number list the company listing exposes.
type ListCompaniesResponse struct {
	Companies []*CompanyResponse `json:"companies"`
	Meta      shared.PageMeta    `json:"meta"`
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func toVehicleResponse(v *party.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:           v.ID,
		ChassisNo:    v.ChassisNo,
		FullRegNo:    v.FullRegNo,
		VehicleName:  v.VehicleName,
		VehicleModel: v.VehicleModel,
		UserType:     v.OwnerKind.String(),
		OwnerRefID:   v.OwnerRefID,
	}
}

func toCompanyResponse(c *party.Company, vehicles []*party.Vehicle) *CompanyResponse {
	resp := &CompanyResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		UserType:    c.UserType.String(),
		Name:        c.Name,
		VehicleUser: c.VehicleUser,
		Contact:     c.Contact,
		CountryCode: c.CountryCode,
		Email:       c.Email,
		Address:     c.Address,
		IsRecycled:  c.IsRecycled,
		CreatedAt:   c.CreatedAt.Format(timeLayout),
		UpdatedAt:   c.UpdatedAt.Format(timeLayout),
	}
	if c.RecycledAt != nil {
		s := c.RecycledAt.Format(timeLayout)
		resp.RecycledAt = &s
	}
	for _, v := range vehicles {
		resp.Vehicles = append(resp.Vehicles, toVehicleResponse(v))
	}
	return resp
}
