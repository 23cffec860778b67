package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/db"
)

// ContactRepository handles database operations for contact inquiries
type ContactRepository struct {
	c *mongo.Collection
}

// NewContactRepository creates a new contact repository
func NewContactRepository(database *mongo.Database) *ContactRepository {
	return &ContactRepository{
		c: database.Collection(db.ContactsCollection),
	}
}

// Create inserts a new contact inquiry
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()
	_, err := r.c.InsertOne(ctx, contact)
	if err != nil {
		return fmt.Errorf("error creating contact: %w", err)
	}
	return nil
}

// GetAll retrieves all contact inquiries, newest first
func (r *ContactRepository) GetAll(ctx context.Context) ([]*models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cur, err := r.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error retrieving contacts: %w", err)
	}
	defer cur.Close(ctx)

	var contacts []*models.Contact
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("error decoding contacts: %w", err)
	}
	return contacts, nil
}
