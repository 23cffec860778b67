package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Branch is a course of study offered by a college. Branches exist only
// nested under a College document and are not globally addressable.
type Branch struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// College holds a name and an ordered list of branches.
type College struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Branches []Branch           `bson:"branches" json:"branches"`
}

// FindBranch returns the branch with the given id, if present.
func (c *College) FindBranch(id primitive.ObjectID) *Branch {
	for i := range c.Branches {
		if c.Branches[i].ID == id {
			return &c.Branches[i]
		}
	}
	return nil
}
