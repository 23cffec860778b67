package dto

// CreateContactRequest is the public inquiry form payload
type CreateContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Subject     string `json:"subject"`
	Address     string `json:"address"`
}
