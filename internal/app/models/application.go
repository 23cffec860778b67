package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus is the derived display state of an application.
// It is computed on read and never persisted.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "Pending"
	StatusInReview  ApplicationStatus = "In Review"
	StatusCompleted ApplicationStatus = "Completed"
)

// Application is a student's admission submission.
type Application struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	CollegeID           primitive.ObjectID `bson:"collegeId" json:"collegeId"`
	BranchID            primitive.ObjectID `bson:"branchId" json:"branchId"`
	Name                string             `bson:"name" json:"name"`
	Email               string             `bson:"email" json:"email"`
	PhoneNumber         string             `bson:"phoneNumber" json:"phoneNumber"`
	GuardianNumber      string             `bson:"guardianNumber" json:"guardianNumber"`
	Class12Marks        *float64           `bson:"class12marks,omitempty" json:"class12marks,omitempty"`
	PinCode             string             `bson:"pinCode" json:"pinCode"`
	State               string             `bson:"state" json:"state"`
	City                string             `bson:"city" json:"city"`
	Address             string             `bson:"address" json:"address"`
	PassingYear         string             `bson:"passingYear" json:"passingYear"`
	LateralEntry        bool               `bson:"lateralEntry" json:"lateralEntry"`
	AadharCardURL       string             `bson:"aadharCardUrl,omitempty" json:"aadharCardUrl,omitempty"`
	Class12MarkSheetURL string             `bson:"class12MarkSheetUrl,omitempty" json:"class12MarkSheetUrl,omitempty"`
}

// CreatedAt derives the creation time from the record's own identifier.
func (a *Application) CreatedAt() time.Time {
	return a.ID.Timestamp()
}

// Status derives the three-state display progression. This is the single
// definition used by every view of an application; callers must not
// reimplement it.
func (a *Application) Status() ApplicationStatus {
	if a.AadharCardURL != "" && a.Class12MarkSheetURL != "" {
		return StatusCompleted
	}
	if a.Class12Marks != nil {
		return StatusInReview
	}
	return StatusPending
}
