package dto

import (
	"github.com/garage/backend/internal/domain/shared"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string             `json:"code"`
	Message   string             `json:"message"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes one failed field of a request payload
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Meta represents pagination metadata
type Meta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	TotalPages  int   `json:"total_pages"`
	PageNumbers []int `json:"page_numbers,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewSuccessResponseWithMeta creates a success response with pagination meta
func NewSuccessResponseWithMeta(data interface{}, meta shared.PageMeta) Response {
	return Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Total:       meta.TotalData,
			Page:        meta.CurrentPage,
			TotalPages:  meta.TotalPages,
			PageNumbers: meta.PageNumbers,
		},
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response carrying the request id
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}
}

// NewValidationErrorResponse creates a 400-style response with per-field details
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      ErrCodeValidation,
			Message:   message,
			RequestID: requestID,
			Details:   details,
		},
	}
}

// ListRequest represents common list/pagination request parameters.
// Zero limit or page disables pagination and returns the full set.
type ListRequest struct {
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	SearchTerm string `form:"searchTerm"`
	IsRecycled *bool  `form:"isRecycled"`
}

// ToListQuery converts the bound query parameters to the domain listing query
func (r ListRequest) ToListQuery() shared.ListQuery {
	return shared.ListQuery{
		Limit:      r.Limit,
		Page:       r.Page,
		SearchTerm: r.SearchTerm,
		IsRecycled: r.IsRecycled,
	}
}

// IDRequest represents a request with an ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
