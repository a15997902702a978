package validation

import (
	"net/http"
	"strings"
	"testing"

	"github.com/skillsenselab/identity/internal/apperrors"
)

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidate_Success(t *testing.T) {
	p := registerPayload{Email: "a@x.com", Password: "password123"}
	if err := Validate(p); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}
}

func TestValidate_InvalidEmail(t *testing.T) {
	p := registerPayload{Email: "not-an-email", Password: "password123"}
	err := Validate(p)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatal("expected an AppError")
	}
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", appErr.HTTPStatus)
	}
	if !strings.Contains(appErr.Message, "email") {
		t.Errorf("message should name the field, got %q", appErr.Message)
	}
}

func TestValidate_ShortPassword(t *testing.T) {
	p := registerPayload{Email: "a@x.com", Password: "abc"}
	err := Validate(p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, _ := apperrors.AsAppError(err)
	if !strings.Contains(appErr.Message, "at least 6") {
		t.Errorf("expected min-length message, got %q", appErr.Message)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(registerPayload{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, _ := apperrors.AsAppError(err)
	if !strings.Contains(appErr.Message, "email is required") {
		t.Errorf("expected required message for email, got %q", appErr.Message)
	}
	if !strings.Contains(appErr.Message, "password is required") {
		t.Errorf("expected required message for password, got %q", appErr.Message)
	}
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	type payload struct {
		UserEmail string `json:"user_email" validate:"required"`
	}
	err := Validate(payload{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, _ := apperrors.AsAppError(err)
	if !strings.Contains(appErr.Message, "user_email") {
		t.Errorf("expected json tag name in message, got %q", appErr.Message)
	}
}
