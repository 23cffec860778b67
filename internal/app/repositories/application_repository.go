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

// Application error types
var (
	ErrApplicationNotFound = errors.New("application not found")
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	c *mongo.Collection
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(database *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{
		c: database.Collection(db.ApplicationsCollection),
	}
}

// Create inserts a new application. Creation time is implicit in the
// assigned ObjectID.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	app.ID = primitive.NewObjectID()
	_, err := r.c.InsertOne(ctx, app)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by its identifier
func (r *ApplicationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var app models.Application
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return &app, nil
}

// GetAll retrieves all applications, newest first
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]*models.Application, error) {
	return r.find(ctx, bson.M{})
}

// GetByUserID retrieves a user's own applications, newest first
func (r *ApplicationRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Application, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]*models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	defer cur.Close(ctx)

	var apps []*models.Application
	if err := cur.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("error decoding applications: %w", err)
	}
	return apps, nil
}

// Delete removes an application by id. Deleting an unknown id is
// reported as ErrApplicationNotFound; it never partially succeeds.
func (r *ApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// SetDocumentURLs records the stored identity-document URLs. Empty
// arguments leave the corresponding field untouched.
func (r *ApplicationRepository) SetDocumentURLs(ctx context.Context, id primitive.ObjectID, aadharURL, markSheetURL string) (*models.Application, error) {
	set := bson.M{}
	if aadharURL != "" {
		set["aadharCardUrl"] = aadharURL
	}
	if markSheetURL != "" {
		set["class12MarkSheetUrl"] = markSheetURL
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var app models.Application
	err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error updating application documents: %w", err)
	}
	return &app, nil
}
