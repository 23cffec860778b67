package dto

// SignupRequest represents a new account registration
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse carries the non-sensitive user fields returned by
// signup and login. The password hash is never serialized.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenResponse represents the issued bearer token and its holder
type TokenResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType" example:"Bearer"`
	ExpiresIn int64        `json:"expiresIn"`
	User      UserResponse `json:"user"`
}
