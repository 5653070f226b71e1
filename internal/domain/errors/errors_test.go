package errors

import (
	"net/http"
	"testing"

	"catalog/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrMenuNotFound.WithDetails("MENU-1234ABCD")

	assert.True(t, errors.Is(detailed, ErrMenuNotFound))
	assert.False(t, errors.Is(detailed, ErrRestaurantNotFound))
	assert.Equal(t, "MENU_004", detailed.ErrorCode())
	assert.Equal(t, "MENU-1234ABCD", detailed.Details())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrInvalidCategoryDepth.WrapMessage("parent CAT-0001 is at depth 3")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.True(t, errors.Is(wrapped, ErrInvalidCategoryDepth))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to save restaurant")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}
