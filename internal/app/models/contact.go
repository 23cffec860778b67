package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is an inbound inquiry record. Write-mostly: created by the
// public contact form and listed in the admin console.
type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Subject     string             `bson:"subject" json:"subject"`
	Address     string             `bson:"address" json:"address"`
}
