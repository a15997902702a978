package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
}

func TestAppError_EmailExists_ClientError(t *testing.T) {
	err := EmailExists()
	if err.Code != ErrCodeAlreadyExists {
		t.Errorf("expected ALREADY_EXISTS, got %s", err.Code)
	}
	// Duplicate registration is a client error on this wire contract.
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	if err.Message != "Email already exists" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestAppError_UserNotFound_Success(t *testing.T) {
	err := UserNotFound()
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.HTTPStatus)
	}
	if err.Message != "User not found" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestAppError_InvalidCredentials_Success(t *testing.T) {
	err := InvalidCredentials()
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	if err.Message != "Invalid credentials" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestAppError_MissingToken_Forbidden(t *testing.T) {
	err := MissingToken()
	if err.HTTPStatus != http.StatusForbidden {
		t.Errorf("expected 403, got %d", err.HTTPStatus)
	}
	if err.Message != "Access denied. No token provided or malformed header." {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestAppError_InvalidToken_Unauthorized(t *testing.T) {
	err := InvalidToken()
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.HTTPStatus)
	}
	if err.Message != "Invalid or expired token." {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestAppError_Internal_HidesCause(t *testing.T) {
	cause := fmt.Errorf("db connection lost")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if strings.Contains(err.Message, "db connection") {
		t.Error("client message must not contain internal detail")
	}
}

func TestAppError_Error_IncludesCause(t *testing.T) {
	err := Internal(fmt.Errorf("boom"))
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() should include the cause, got %q", err.Error())
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := New(ErrCodeInternal, "wrapper", http.StatusInternalServerError).WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := UserNotFound()
	wrapped := fmt.Errorf("service: %w", inner)

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", appErr.Code)
	}
}

func TestIsAppError_PlainError(t *testing.T) {
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("plain error should not be an AppError")
	}
	if !IsAppError(InvalidToken()) {
		t.Error("InvalidToken should be an AppError")
	}
}
