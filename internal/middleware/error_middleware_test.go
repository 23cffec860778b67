package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/arnab/campusgate/internal/pkg/apperrors"
)

func statusFor(err error) (int, string) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)
	return w.Code, w.Body.String()
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperrors.ErrValidationFailed, http.StatusBadRequest},
		{fmt.Errorf("%w: phone number must be 10 digits", apperrors.ErrValidationFailed), http.StatusBadRequest},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{apperrors.ErrPermissionDenied, http.StatusForbidden},
		{apperrors.ErrUserNotFound, http.StatusNotFound},
		{apperrors.ErrApplicationNotFound, http.StatusNotFound},
		{apperrors.ErrCollegeNotFound, http.StatusNotFound},
		{apperrors.ErrBranchNotFound, http.StatusNotFound},
		{apperrors.ErrNoticeNotFound, http.StatusNotFound},
		{apperrors.ErrResourceNotFound, http.StatusNotFound},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		status, _ := statusFor(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
	}
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	status, body := statusFor(errors.New("pq: connection refused at 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotContains(t, body, "10.0.0.3", "internal detail must never reach the client")
	assert.Contains(t, body, "Internal server error")
}

func TestHandleAPIErrorValidationMessageSurfaces(t *testing.T) {
	status, body := statusFor(fmt.Errorf("%w: PIN code must be 6 digits", apperrors.ErrValidationFailed))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "PIN code must be 6 digits")
	assert.Contains(t, body, `"success":false`)
}
