package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/pkg/apperrors"
	"github.com/arnab/campusgate/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "campusgate.test",
	})
}

func newTestAuthService(users *fakeUserStore) *AuthService {
	return NewAuthService(users, newTestJWTService(), zerolog.Nop())
}

func TestSignupCreatesUserWithDefaultRole(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Arnab Das",
		Email:    "arnab@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "Arnab Das", resp.Name)
	assert.Equal(t, "arnab@example.com", resp.Email)
	assert.Equal(t, string(models.RoleUser), resp.Role)
	assert.NotEmpty(t, resp.ID)

	stored, err := users.GetByEmail(context.Background(), "arnab@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", stored.Password, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(stored.Password, "supersecret"))
}

func TestSignupRejectsInvalidInput(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "No Email",
		Email:    "not-an-email",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Short Password",
		Email:    "short@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	req := &dto.SignupRequest{Name: "First", Email: "dup@example.com", Password: "supersecret"}
	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), &dto.SignupRequest{
		Name: "Second", Email: "dup@example.com", Password: "othersecret",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)

	hash, err := auth.HashPassword("adminpass123")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &models.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: hash,
		Role:     models.RoleAdmin,
	}))

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "adminpass123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, string(models.RoleAdmin), resp.User.Role)

	claims, err := newTestJWTService().ValidateAndExtractClaims(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLoginFailureIsUniform(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)

	hash, err := auth.HashPassword("rightpassword")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &models.User{
		Name: "Known", Email: "known@example.com", Password: hash,
	}))

	// Unknown email and wrong password must be indistinguishable
	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "unknown@example.com", Password: "whatever123",
	})
	_, errWrong := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "known@example.com", Password: "wrongpassword",
	})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}
