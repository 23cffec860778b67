package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice is an announcement published on the portal. Non-admin readers
// only ever observe notices with IsPublished set.
type Notice struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	Date        time.Time          `bson:"date" json:"date"`
}
