package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApplicationStatusDerivation(t *testing.T) {
	marks := 92.0

	// No marks recorded yet
	app := &Application{}
	assert.Equal(t, StatusPending, app.Status())

	// Marks present, documents missing
	app.Class12Marks = &marks
	assert.Equal(t, StatusInReview, app.Status())

	// One document is not enough
	app.AadharCardURL = "http://localhost:8080/uploads/documents/a.pdf"
	assert.Equal(t, StatusInReview, app.Status())

	// Both documents present
	app.Class12MarkSheetURL = "http://localhost:8080/uploads/documents/m.pdf"
	assert.Equal(t, StatusCompleted, app.Status())
}

func TestApplicationStatusCompletedWithoutMarks(t *testing.T) {
	// Documents alone complete the application even if marks were
	// cleared afterwards
	app := &Application{
		AadharCardURL:       "a.pdf",
		Class12MarkSheetURL: "m.pdf",
	}
	assert.Equal(t, StatusCompleted, app.Status())
}

func TestApplicationCreatedAtFromID(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app := &Application{ID: primitive.NewObjectIDFromTimestamp(ts)}

	assert.Equal(t, ts.Unix(), app.CreatedAt().Unix())
}

func TestRoleTypeIsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, RoleType("superuser").IsValid())
}
