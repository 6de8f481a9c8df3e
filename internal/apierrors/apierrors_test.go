package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		code  int
		check func(error) bool
	}{
		{name: "bad request", err: NewBadRequest("x"), code: http.StatusBadRequest, check: IsBadRequestError},
		{name: "unauthorized", err: NewUnauthorized("x"), code: http.StatusUnauthorized, check: IsUnauthorizedError},
		{name: "forbidden", err: NewForbidden("x"), code: http.StatusForbidden, check: IsForbiddenError},
		{name: "not found", err: NewNotFound("x"), code: http.StatusNotFound, check: IsNotFoundError},
		{name: "bad gateway", err: NewBadGateway("x"), code: http.StatusBadGateway, check: IsBadGatewayError},
		{name: "internal", err: NewInternalServerError("x"), code: http.StatusInternalServerError, check: IsInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.err)

			status := AsAPIStatus(wrapped)
			require.NotNil(t, status)
			require.Equal(t, tt.code, status.Status().Code)
			require.Equal(t, "x", status.Status().Details)
			require.True(t, tt.check(wrapped))
		})
	}
}

func TestAsAPIStatusPlainError(t *testing.T) {
	err := errors.New("plain")
	require.Nil(t, AsAPIStatus(err))
	require.False(t, IsBadRequestError(err))
}

func TestErrorMessage(t *testing.T) {
	require.Equal(t, "request.invalid: amount missing", NewBadRequest("amount missing").Error())
	require.Equal(t, "unknown", NewInternalServerError("").Error())
}
