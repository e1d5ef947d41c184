package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{BadRequest("x"), http.StatusBadRequest},
		{Unauthorized("x"), http.StatusUnauthorized},
		{Forbidden("x"), http.StatusForbidden},
		{NotFound("x"), http.StatusNotFound},
		{Conflict("x"), http.StatusConflict},
		{Validation(), http.StatusBadRequest},
		{Unavailable("x", nil), http.StatusBadGateway},
		{Internal("x", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.err.Status(); got != tt.want {
			t.Errorf("kind %v: Status() = %d, want %d", tt.err.Kind, got, tt.want)
		}
	}
}

func TestOperational(t *testing.T) {
	if Internal("boom", nil).Operational() {
		t.Errorf("internal errors must be non-operational")
	}
	for _, e := range []*Error{BadRequest("x"), NotFound("x"), Conflict("x"), Validation()} {
		if !e.Operational() {
			t.Errorf("kind %v should be operational", e.Kind)
		}
	}
}

func TestFrom(t *testing.T) {
	t.Run("passes through typed errors", func(t *testing.T) {
		orig := NotFound("Diary entry not found")
		wrapped := fmt.Errorf("handling request: %w", orig)
		if got := From(wrapped); got != orig {
			t.Fatalf("expected the original error, got %+v", got)
		}
	})

	t.Run("wraps unknown errors as internal", func(t *testing.T) {
		cause := errors.New("driver: connection reset")
		got := From(cause)
		if got.Kind != KindInternal {
			t.Fatalf("expected internal kind, got %v", got.Kind)
		}
		if !errors.Is(got, cause) {
			t.Fatalf("cause must stay in the chain")
		}
	})
}

func TestWithCauseAndUnwrap(t *testing.T) {
	cause := errors.New("token signature mismatch")
	e := Unauthorized("Invalid token").WithCause(cause)
	if !errors.Is(e, cause) {
		t.Fatalf("expected cause in chain")
	}

	var target *Error
	if !errors.As(fmt.Errorf("wrap: %w", e), &target) {
		t.Fatalf("errors.As must find *Error")
	}
	if target.Kind != KindUnauthorized {
		t.Fatalf("unexpected kind %v", target.Kind)
	}
}
