package handler

import (
	hrapp "github.com/garage/backend/internal/application/hr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SalaryHandler handles salary API endpoints
type SalaryHandler struct {
	BaseHandler
	salaryService *hrapp.SalaryService
}

// NewSalaryHandler creates a new SalaryHandler
func NewSalaryHandler(salaryService *hrapp.SalaryService) *SalaryHandler {
	return &SalaryHandler{
		salaryService: salaryService,
	}
}

// createSalariesRequest is the bulk salary payload
type createSalariesRequest struct {
	Salaries []hrapp.SalaryEntry `json:"salaries" binding:"required,min=1,dive"`
}

// listSalariesQuery carries the salary listing query string
type listSalariesQuery struct {
	EmployeeID string `form:"employeeId" binding:"omitempty,uuid"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
}

// CreateBulk records one month's pay for a batch of employees, all or nothing
func (h *SalaryHandler) CreateBulk(c *gin.Context) {
	var req createSalariesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.salaryService.CreateBulk(c.Request.Context(), req.Salaries); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"created": len(req.Salaries)})
}

// CurrentMonth returns this month's salaries grouped by month label
func (h *SalaryHandler) CurrentMonth(c *gin.Context) {
	months, err := h.salaryService.CurrentMonth(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, months)
}

// List returns salaries joined with their employees, newest first
func (h *SalaryHandler) List(c *gin.Context) {
	var query listSalariesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var employeeID *uuid.UUID
	if query.EmployeeID != "" {
		if id, err := uuid.Parse(query.EmployeeID); err == nil {
			employeeID = &id
		}
	}

	resp, err := h.salaryService.List(c.Request.Context(), employeeID, query.Limit, query.Page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update replaces one salary record's amounts
func (h *SalaryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid salary ID")
		return
	}

	var entry hrapp.SalaryEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.salaryService.Update(c.Request.Context(), id, entry)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a salary record
func (h *SalaryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid salary ID")
		return
	}

	if err := h.salaryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
