package handlers

import (
	"fmt"
	"strconv"
	"time"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// parseTimeValue accepts RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD',
// normalizing to UTC.
func parseTimeValue(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'", s)
}

// bindJSON binds the request body into dst, writing the normalized 400
// envelope on failure. Returns false when the request was already handled.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.fail(c, apperr.BadRequest("Invalid request body").WithCause(err))
		return false
	}
	return true
}

// pageParams reads ?page= and ?limit=; clamping happens in the service layer.
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// ownerScope resolves the owner filter for list endpoints: admins may list on
// behalf of any user via ?userId=, everyone else is pinned to themselves.
func ownerScope(c *gin.Context) string {
	if requesterRole(c) == models.RoleAdmin {
		if id := c.Query("userId"); id != "" {
			return id
		}
	}
	return requesterID(c)
}

// parseBodyTime parses a date string out of a request body, reporting a
// field-level validation error on a bad format. Empty input yields zero time.
func (h *Handler) parseBodyTime(c *gin.Context, field, s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := parseTimeValue(s)
	if err != nil {
		h.fail(c, apperr.Validation(apperr.FieldError{
			Field:      field,
			Constraint: "date",
			Message:    field + " must be RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'",
		}))
		return time.Time{}, false
	}
	return t, true
}

// timePtr converts a parsed optional date to the pointer form update params use.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
