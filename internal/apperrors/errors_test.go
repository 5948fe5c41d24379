package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"empathos/backend/internal/apperrors"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *apperrors.AppError
		typ  apperrors.ErrorType
		code int
	}{
		{"validation", apperrors.NewValidationError("missing field"), apperrors.ErrorTypeValidation, http.StatusBadRequest},
		{"not found", apperrors.NewNotFoundError("gone"), apperrors.ErrorTypeNotFound, http.StatusNotFound},
		{"duplicate identity", apperrors.NewDuplicateIdentityError("taken"), apperrors.ErrorTypeDuplicateIdentity, http.StatusConflict},
		{"invalid credentials", apperrors.NewInvalidCredentialsError(), apperrors.ErrorTypeInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", apperrors.NewUnauthorizedError("log in"), apperrors.ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("no"), apperrors.ErrorTypeForbidden, http.StatusForbidden},
		{"internal", apperrors.NewInternalError("oops"), apperrors.ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Contains(t, tt.err.Error(), string(tt.typ))
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := apperrors.NewNotFoundError("missing")

	// Direct and wrapped AppErrors come back unchanged.
	assert.Equal(t, appErr, apperrors.AsAppError(appErr))
	assert.Equal(t, appErr, apperrors.AsAppError(fmt.Errorf("outer: %w", appErr)))

	// Anything else collapses to a generic internal error with no detail.
	generic := apperrors.AsAppError(errors.New("pq: disk full"))
	assert.Equal(t, apperrors.ErrorTypeInternal, generic.Type)
	assert.NotContains(t, generic.Message, "disk full")
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("wrap: %w", apperrors.NewValidationError("bad"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.False(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.False(t, apperrors.IsType(errors.New("plain"), apperrors.ErrorTypeValidation))
}
