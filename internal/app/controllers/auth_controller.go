package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/app/services"
	"github.com/arnab/campusgate/internal/middleware"
)

// AuthController handles signup and login
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Signup handles account registration
// @Summary Register a new account
// @Description Creates a new user account with the default user role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Account created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.authService.Signup(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user, "Account created successfully"))
}

// Login handles authentication
// @Summary Log in
// @Description Verifies credentials and issues a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	tokenResp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Browser clients authenticate via this cookie instead of the
	// Authorization header
	ctx.SetCookie("token", tokenResp.Token, int(tokenResp.ExpiresIn), "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokenResp, "Login successful"))
}

// Logout clears the authentication cookie
// @Summary Log out
// @Description Clears the token cookie; bearer tokens simply expire
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie("token", "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Logged out"))
}
