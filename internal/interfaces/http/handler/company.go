package handler

import (
	partyapp "github.com/garage/backend/internal/application/party"
	"github.com/garage/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company API endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *partyapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *partyapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// Create creates a company together with its first vehicle
func (h *CompanyHandler) Create(c *gin.Context) {
	var req partyapp.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.CreateWithVehicle(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns companies with their fleets, newest first
func (h *CompanyHandler) List(c *gin.Context) {
	var query dto.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.List(c.Request.Context(), query.ToListQuery())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns one company with its fleet and receipt ids
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	resp, err := h.companyService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update updates a company and optionally upserts one vehicle
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req partyapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete hard-deletes a company and its fleet
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// PermanentlyDelete removes a recycled company for good
func (h *CompanyHandler) PermanentlyDelete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	if err := h.companyService.PermanentlyDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// MoveToRecycleBin marks a company as recycled
func (h *CompanyHandler) MoveToRecycleBin(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	resp, err := h.companyService.MoveToRecycleBin(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// RestoreFromRecycleBin restores a recycled company
func (h *CompanyHandler) RestoreFromRecycleBin(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	resp, err := h.companyService.RestoreFromRecycleBin(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// MoveAllToRecycleBin recycles every company
func (h *CompanyHandler) MoveAllToRecycleBin(c *gin.Context) {
	result, err := h.companyService.MoveAllToRecycleBin(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RestoreAllFromRecycleBin restores every recycled company
func (h *CompanyHandler) RestoreAllFromRecycleBin(c *gin.Context) {
	result, err := h.companyService.RestoreAllFromRecycleBin(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
