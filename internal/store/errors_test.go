package store

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := ErrNotFound.WithMessage("user not found")
	if err.Error() != "user not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.HTTPCode() != http.StatusNotFound {
		t.Errorf("HTTPCode() = %d", err.HTTPCode())
	}
	// Sentinel is untouched.
	if ErrNotFound.Message != "resource not found" {
		t.Errorf("sentinel mutated: %q", ErrNotFound.Message)
	}
}

func TestError_Cause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := ErrInvalidInput.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to see the cause")
	}
	if err.Error() != "invalid input: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestErrAlreadyExists_MapsToBadRequest(t *testing.T) {
	if ErrAlreadyExists.HTTPCode() != http.StatusBadRequest {
		t.Errorf("HTTPCode() = %d, want %d", ErrAlreadyExists.HTTPCode(), http.StatusBadRequest)
	}
}

func TestError_AsFromWrapped(t *testing.T) {
	wrapped := fmt.Errorf("fetching user: %w", ErrNotFound)

	var storeErr *Error
	if !errors.As(wrapped, &storeErr) {
		t.Fatal("expected errors.As to find *Error")
	}
	if storeErr.Code != http.StatusNotFound {
		t.Errorf("Code = %d", storeErr.Code)
	}
}
