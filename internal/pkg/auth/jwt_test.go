package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arnab/campusgate/internal/app/models"
)

func testUser(role models.RoleType) *models.User {
	return &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Test User",
		Email: "test@example.com",
		Role:  role,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "unit-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campusgate.test",
	})

	user := testUser(models.RoleUser)
	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(models.RoleUser), claims.Role)
	assert.Equal(t, "campusgate.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "token must carry a jti")
}

func TestTokenEmbedsRole(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "s", TokenExp: time.Hour})

	token, _, err := svc.GenerateToken(testUser(models.RoleAdmin))
	require.NoError(t, err)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "s", TokenExp: -time.Minute})

	token, _, err := svc.GenerateToken(testUser(models.RoleUser))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", TokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", TokenExp: time.Hour})

	token, _, err := issuer.GenerateToken(testUser(models.RoleUser))
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsEmptyToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "s", TokenExp: time.Hour})

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAndExtractClaims("not.a.jwt")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	// A bare value is passed through as-is
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}
