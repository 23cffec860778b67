package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/app/services"
	"github.com/arnab/campusgate/internal/pkg/auth"
)

// Context keys set by the auth gateway
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// tokenCookieName is the fallback cookie browser clients send when no
// Authorization header is present.
const tokenCookieName = "token"

// AuthMiddleware is the authentication gateway. It verifies the bearer
// token once per request; handlers behind it trust the context values.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// tokenFromRequest extracts the bearer token from the Authorization
// header, falling back to the token cookie.
func tokenFromRequest(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		// A raw JWT without the Bearer prefix is accepted as-is
		if strings.Count(authHeader, ".") == 2 && !strings.HasPrefix(authHeader, "Bearer ") {
			return authHeader, nil
		}
		return auth.ExtractBearerToken(authHeader)
	}

	if cookie, err := c.Cookie(tokenCookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	return "", auth.ErrInvalidFormat
}

// JWTAuth rejects requests without a valid token and stores the
// caller's identity in the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := tokenFromRequest(c)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization token missing")
			errorDetail = errorDetail.WithRedirect("/login")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			errorDetail = errorDetail.WithRedirect("/login")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// OptionalJWTAuth stores the caller's identity when the request carries
// a valid token, and proceeds anonymously otherwise. A malformed or
// expired token degrades to anonymous rather than rejecting.
func (m *AuthMiddleware) OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := tokenFromRequest(c)
		if err == nil {
			if claims, err := m.jwtService.ValidateAndExtractClaims(tokenString); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextEmail, claims.Email)
				c.Set(ContextRole, claims.Role)
			}
		}
		c.Next()
	}
}

// AdminRequired rejects authenticated callers who do not hold the admin
// role. Must run after JWTAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("User role not found")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != string(models.RoleAdmin) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")

			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// CallerIdentity builds the caller's identity from the values JWTAuth
// stored. The second return is false for anonymous requests.
func CallerIdentity(c *gin.Context) (services.Identity, bool) {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return services.Identity{}, false
	}

	email, _ := c.Get(ContextEmail)
	role, _ := c.Get(ContextRole)

	identity := services.Identity{}
	if id, ok := userID.(string); ok {
		identity.ID = id
	}
	if e, ok := email.(string); ok {
		identity.Email = e
	}
	if r, ok := role.(string); ok {
		identity.Role = models.RoleType(r)
	}

	return identity, identity.ID != ""
}
