package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    exp,
		TokenIssuer: "campusgate.test",
	})
}

func issueToken(t *testing.T, svc *auth.JWTService, role models.RoleType) (string, string) {
	t.Helper()
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "mw@example.com",
		Role:  role,
	}
	token, _, err := svc.GenerateToken(user)
	require.NoError(t, err)
	return token, user.ID.Hex()
}

func protectedRouter(m *AuthMiddleware) *gin.Engine {
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		identity, ok := CallerIdentity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": identity.ID, "role": string(identity.Role)})
	})
	router.GET("/admin", m.JWTAuth(), m.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	router.GET("/optional", m.OptionalJWTAuth(), func(c *gin.Context) {
		_, ok := CallerIdentity(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})
	return router
}

func TestJWTAuthMissingToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour))
	router := protectedRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "redirect")
}

func TestJWTAuthBearerHeader(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(svc)
	router := protectedRouter(m)

	token, userID := issueToken(t, svc, models.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID)
}

func TestJWTAuthCookieFallback(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(svc)
	router := protectedRouter(m)

	token, _ := issueToken(t, svc, models.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	issuerSvc := newTestJWTService(-time.Minute)
	m := NewAuthMiddleware(newTestJWTService(time.Hour))
	router := protectedRouter(m)

	token, _ := issueToken(t, issuerSvc, models.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestJWTAuthGarbageToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour))
	router := protectedRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(svc)
	router := protectedRouter(m)

	userToken, _ := issueToken(t, svc, models.RoleUser)
	adminToken, _ := issueToken(t, svc, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "non-admin role must be 403, not 401")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalJWTAuthDegradesToAnonymous(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(svc)
	router := protectedRouter(m)

	// No token at all
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	// Garbage token also proceeds anonymously
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	// Valid token is recognized
	token, _ := issueToken(t, svc, models.RoleUser)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}
