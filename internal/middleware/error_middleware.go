package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/pkg/apperrors"
)

func errorEnvelope(code dto.ErrorCode, message string) dto.APIResponse {
	return dto.APIResponse{
		Success:   false,
		Message:   message,
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	}
}

// HandleAPIError maps service errors onto HTTP responses. Handlers call
// it for every error a service returns so that status codes stay
// uniform across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		message := "Validation failed"
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Message != "" {
			message = customErr.Message
		} else if err.Error() != "" {
			message = err.Error()
		}
		c.JSON(400, errorEnvelope(dto.ErrorCodeValidationFailed, message))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, errorEnvelope(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, errorEnvelope(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, errorEnvelope(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, errorEnvelope(dto.ErrorCodeTokenNotFound, "Token not found"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, errorEnvelope(dto.ErrorCodeForbidden, "Permission denied"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, errorEnvelope(dto.ErrorCodeResourceNotFound, "User not found"))
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		c.JSON(404, errorEnvelope(dto.ErrorCodeResourceNotFound, "Application not found"))
	case errors.Is(err, apperrors.ErrCollegeNotFound):
		c.JSON(404, errorEnvelope(dto.ErrorCodeResourceNotFound, "College not found"))
	case errors.Is(err, apperrors.ErrBranchNotFound):
		c.JSON(404, errorEnvelope(dto.ErrorCodeResourceNotFound, "Branch not found"))
	case errors.Is(err, apperrors.ErrNoticeNotFound):
		c.JSON(404, errorEnvelope(dto.ErrorCodeResourceNotFound, "Notice not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, errorEnvelope(dto.ErrorCodeResourceNotFound, "Resource not found"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, errorEnvelope(dto.ErrorCodeResourceAlreadyExists, "Email already exists"))
	default:
		// Internal detail never reaches the client
		c.JSON(500, errorEnvelope(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
