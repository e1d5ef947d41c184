package handlers

import (
	"net/http"

	"healthtrack/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Generic client-facing messages. Specific causes are logged, never returned.
const (
	msgUnauthorized = "Unauthorized access"
	msgForbidden    = "Access denied"
	msgInternal     = "Internal Server Error"
)

// envelope is the uniform response body for every endpoint.
type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       any                 `json:"data,omitempty"`
	Errors     []apperr.FieldError `json:"errors,omitempty"`
	Pagination *pagination         `json:"pagination,omitempty"`
	Detail     string              `json:"detail,omitempty"` // non-production only
}

type pagination struct {
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	HasNextPage  bool `json:"hasNextPage"`
}

func newPagination(total, page, limit int) *pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &pagination{
		TotalItems:   total,
		ItemsPerPage: limit,
		CurrentPage:  page,
		TotalPages:   totalPages,
		HasNextPage:  page < totalPages,
	}
}

func (h *Handler) ok(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: msg, Data: data})
}

func (h *Handler) created(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusCreated, envelope{Success: true, Message: msg, Data: data})
}

func (h *Handler) paginated(c *gin.Context, msg string, data any, total, page, limit int) {
	c.JSON(http.StatusOK, envelope{
		Success:    true,
		Message:    msg,
		Data:       data,
		Pagination: newPagination(total, page, limit),
	})
}

// fail classifies err, logs it and writes the normalized error envelope.
// Unauthorized/Forbidden/Internal messages are replaced with fixed generic
// text so handler-level detail never leaks to clients.
func (h *Handler) fail(c *gin.Context, err error) {
	e := apperr.From(err)

	msg := e.Message
	switch e.Kind {
	case apperr.KindUnauthorized:
		msg = msgUnauthorized
	case apperr.KindForbidden:
		msg = msgForbidden
	case apperr.KindInternal:
		msg = msgInternal
	}

	if h.log != nil {
		kv := []any{"kind", e.Kind, "path", c.FullPath(), "err", err}
		if e.Operational() {
			h.log.Warnw("request_failed", kv...)
		} else {
			h.log.Errorw("request_failed", kv...)
		}
	}

	body := envelope{Success: false, Message: msg, Errors: e.Fields}
	if h.dev {
		body.Detail = err.Error()
	}
	c.AbortWithStatusJSON(e.Status(), body)
}

// failStatus writes a generic error envelope without an underlying error,
// used by middleware rejections where the cause is already logged.
func (h *Handler) failStatus(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Message: msg})
}
