package models

// RoleType defines the authorization role of a user
type RoleType string

const (
	// RoleUser is the default role assigned on signup
	RoleUser RoleType = "user"
	// RoleAdmin grants access to the admin console endpoints
	RoleAdmin RoleType = "admin"
)

// IsValid checks whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}
