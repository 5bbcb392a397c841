package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"bad request", NewBadRequestError("bad request"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"invalid transition", NewInvalidTransitionError("not pending"), ErrorTypeInvalidTransition, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("exists"), ErrorTypeConflict, http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("no"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", tt.err.Type, tt.wantType)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	err := NewNotFoundError("ticket not found")
	if err.Error() != "not_found: ticket not found" {
		t.Errorf("Error() = %q", err.Error())
	}

	withDetails := NewValidationError("bad input", "field x is empty")
	if withDetails.Error() != "validation_error: bad input (field x is empty)" {
		t.Errorf("Error() = %q", withDetails.Error())
	}
}

// Guard violations answer 400: a double quotation is a precondition failure,
// not a 409 resource conflict.
func TestConflictAnswersBadRequest(t *testing.T) {
	err := NewConflictError("ticket already has a quotation")
	if err.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want %d", err.Code, http.StatusBadRequest)
	}
	if err.Type != ErrorTypeConflict {
		t.Errorf("Type = %v, want %v", err.Type, ErrorTypeConflict)
	}
}

func TestErrorPredicates(t *testing.T) {
	conflict := NewConflictError("exists")
	if !IsConflictError(conflict) {
		t.Error("IsConflictError(conflict) = false")
	}
	if IsConflictError(NewNotFoundError("missing")) {
		t.Error("IsConflictError(not found) = true")
	}
	if IsConflictError(fmt.Errorf("plain")) {
		t.Error("IsConflictError(plain error) = true")
	}

	wrapped := fmt.Errorf("save failed: %w", NewInvalidTransitionError("not pending"))
	if !IsInvalidTransitionError(wrapped) {
		t.Error("IsInvalidTransitionError should unwrap wrapped errors")
	}
	if !IsAppError(wrapped) {
		t.Error("IsAppError should unwrap wrapped errors")
	}
	if GetAppError(fmt.Errorf("plain")) != nil {
		t.Error("GetAppError(plain error) != nil")
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql duplicate", fmt.Errorf("Error 1062: Duplicate entry '1' for key 'quotations.idx_ticket'"), true},
		{"sqlite unique", fmt.Errorf("UNIQUE constraint failed: quotations.ticket_id"), true},
		{"postgres unique", fmt.Errorf("duplicate key value violates unique constraint"), true},
		{"unrelated", fmt.Errorf("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateError(tt.err); got != tt.want {
				t.Errorf("IsDuplicateError() = %v, want %v", got, tt.want)
			}
		})
	}
}
