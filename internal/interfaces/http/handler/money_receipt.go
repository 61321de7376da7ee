package handler

import (
	"fmt"
	"net/http"

	billingapp "github.com/garage/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MoneyReceiptHandler handles money receipt API endpoints
type MoneyReceiptHandler struct {
	BaseHandler
	receiptService *billingapp.MoneyReceiptService
	assetBaseURL   string
}

// NewMoneyReceiptHandler creates a new MoneyReceiptHandler. assetBaseURL is
// the public base URL the PDF renderer fetches the letterhead logo from.
func NewMoneyReceiptHandler(receiptService *billingapp.MoneyReceiptService, assetBaseURL string) *MoneyReceiptHandler {
	return &MoneyReceiptHandler{
		receiptService: receiptService,
		assetBaseURL:   assetBaseURL,
	}
}

// listReceiptsQuery carries the receipt listing query string. OwnerID narrows
// the listing to one party's receipts.
type listReceiptsQuery struct {
	OwnerID    string `form:"ownerId" binding:"omitempty,uuid"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	SearchTerm string `form:"searchTerm"`
	IsRecycled *bool  `form:"isRecycled"`
}

func (q listReceiptsQuery) toRequest() billingapp.ListMoneyReceiptsRequest {
	req := billingapp.ListMoneyReceiptsRequest{
		Limit:      q.Limit,
		Page:       q.Page,
		SearchTerm: q.SearchTerm,
		IsRecycled: q.IsRecycled,
	}
	if q.OwnerID != "" {
		if id, err := uuid.Parse(q.OwnerID); err == nil {
			req.OwnerID = &id
		}
	}
	return req
}

// Create creates a money receipt and reconciles it against its invoice
func (h *MoneyReceiptHandler) Create(c *gin.Context) {
	var req billingapp.CreateMoneyReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.receiptService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns receipts matching the query, newest first
func (h *MoneyReceiptHandler) List(c *gin.Context) {
	var query listReceiptsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.receiptService.List(c.Request.Context(), query.toRequest())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListDue returns receipts with an outstanding remaining amount
func (h *MoneyReceiptHandler) ListDue(c *gin.Context) {
	var query listReceiptsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.receiptService.ListDue(c.Request.Context(), query.toRequest())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns one receipt with its vehicle and display amounts
func (h *MoneyReceiptHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	resp, err := h.receiptService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update updates the editable receipt fields
func (h *MoneyReceiptHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req billingapp.UpdateMoneyReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.receiptService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete hard-deletes a receipt and detaches it from its owner
func (h *MoneyReceiptHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// PermanentlyDelete removes a receipt from the recycle bin for good
func (h *MoneyReceiptHandler) PermanentlyDelete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.PermanentlyDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// MoveToRecycleBin marks a receipt as recycled
func (h *MoneyReceiptHandler) MoveToRecycleBin(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	resp, err := h.receiptService.MoveToRecycleBin(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// RestoreFromRecycleBin restores a recycled receipt
func (h *MoneyReceiptHandler) RestoreFromRecycleBin(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	resp, err := h.receiptService.RestoreFromRecycleBin(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// MoveAllToRecycleBin recycles every receipt
func (h *MoneyReceiptHandler) MoveAllToRecycleBin(c *gin.Context) {
	result, err := h.receiptService.MoveAllToRecycleBin(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RestoreAllFromRecycleBin restores every recycled receipt
func (h *MoneyReceiptHandler) RestoreAllFromRecycleBin(c *gin.Context) {
	result, err := h.receiptService.RestoreAllFromRecycleBin(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// DownloadPDF renders the receipt as a PDF document
func (h *MoneyReceiptHandler) DownloadPDF(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	pdf, err := h.receiptService.RenderPDF(c.Request.Context(), id, h.assetBaseURL)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=money-receipt-%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
