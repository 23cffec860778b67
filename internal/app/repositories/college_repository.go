package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/db"
)

// College error types
var (
	ErrCollegeNotFound = errors.New("college not found")
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	c *mongo.Collection
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(database *mongo.Database) *CollegeRepository {
	return &CollegeRepository{
		c: database.Collection(db.CollegesCollection),
	}
}

// Create inserts a new college, assigning ids to its branches
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	college.ID = primitive.NewObjectID()
	assignBranchIDs(college.Branches)
	if college.Branches == nil {
		college.Branches = []models.Branch{}
	}

	_, err := r.c.InsertOne(ctx, college)
	if err != nil {
		return fmt.Errorf("error creating college: %w", err)
	}
	return nil
}

// GetByID retrieves a college by its identifier
func (r *CollegeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.College, error) {
	var college models.College
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&college)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}
	return &college, nil
}

// GetAll retrieves all colleges
func (r *CollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	defer cur.Close(ctx)

	var colleges []*models.College
	if err := cur.All(ctx, &colleges); err != nil {
		return nil, fmt.Errorf("error decoding colleges: %w", err)
	}
	return colleges, nil
}

// Update applies a partial update. A non-nil branches slice fully
// replaces the stored branch list, deleting anything omitted.
func (r *CollegeRepository) Update(ctx context.Context, id primitive.ObjectID, name string, branches *[]models.Branch) (*models.College, error) {
	set := bson.M{}
	if name != "" {
		set["name"] = name
	}
	if branches != nil {
		replacement := *branches
		assignBranchIDs(replacement)
		if replacement == nil {
			replacement = []models.Branch{}
		}
		set["branches"] = replacement
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var college models.College
	err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&college)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error updating college: %w", err)
	}
	return &college, nil
}

// Delete removes a college by id
func (r *CollegeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting college: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrCollegeNotFound
	}
	return nil
}

func assignBranchIDs(branches []models.Branch) {
	for i := range branches {
		if branches[i].ID.IsZero() {
			branches[i].ID = primitive.NewObjectID()
		}
	}
}
