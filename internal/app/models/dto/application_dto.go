package dto

import (
	"time"

	"github.com/arnab/campusgate/internal/app/models"
)

// SubmitApplicationRequest is the student-facing submission payload.
// The owning user is always taken from the authenticated identity,
// never from the body.
type SubmitApplicationRequest struct {
	CollegeID      string   `json:"collegeId" binding:"required"`
	BranchID       string   `json:"branchId" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required"`
	PhoneNumber    string   `json:"phoneNumber" binding:"required"`
	GuardianNumber string   `json:"guardianNumber" binding:"required"`
	Class12Marks   *float64 `json:"class12marks" binding:"required"`
	PinCode        string   `json:"pinCode" binding:"required"`
	State          string   `json:"state" binding:"required"`
	City           string   `json:"city" binding:"required"`
	Address        string   `json:"address" binding:"required"`
	PassingYear    string   `json:"passingYear" binding:"required"`
	LateralEntry   bool     `json:"lateralEntry"`
}

// DeleteApplicationRequest identifies the application to remove
type DeleteApplicationRequest struct {
	ID string `json:"id" binding:"required"`
}

// ApplicationResponse is an application enriched with its derived
// display status and creation time.
type ApplicationResponse struct {
	models.Application
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
}

// NewApplicationResponse attaches the derived fields to an application
func NewApplicationResponse(app *models.Application) ApplicationResponse {
	return ApplicationResponse{
		Application: *app,
		Status:      app.Status(),
		CreatedAt:   app.CreatedAt(),
	}
}

// NewApplicationListResponse converts a list of applications
func NewApplicationListResponse(apps []*models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, NewApplicationResponse(app))
	}
	return out
}
