package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/db"
)

// Notice error types
var (
	ErrNoticeNotFound = errors.New("notice not found")
)

// NoticeRepository handles database operations for notices
type NoticeRepository struct {
	c *mongo.Collection
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(database *mongo.Database) *NoticeRepository {
	return &NoticeRepository{
		c: database.Collection(db.NoticesCollection),
	}
}

// Create inserts a new notice. The publish date defaults to now.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	notice.ID = primitive.NewObjectID()
	if notice.Date.IsZero() {
		notice.Date = time.Now().UTC()
	}

	_, err := r.c.InsertOne(ctx, notice)
	if err != nil {
		return fmt.Errorf("error creating notice: %w", err)
	}
	return nil
}

// GetAll retrieves notices newest first. With publishedOnly set, only
// notices with isPublished=true are returned.
func (r *NoticeRepository) GetAll(ctx context.Context, publishedOnly bool) ([]*models.Notice, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["isPublished"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notices: %w", err)
	}
	defer cur.Close(ctx)

	var notices []*models.Notice
	if err := cur.All(ctx, &notices); err != nil {
		return nil, fmt.Errorf("error decoding notices: %w", err)
	}
	return notices, nil
}

// Update replaces a notice's content and publish flag, resetting the
// publish date to the time of the update.
func (r *NoticeRepository) Update(ctx context.Context, id primitive.ObjectID, title, description string, isPublished bool) (*models.Notice, error) {
	set := bson.M{
		"title":       title,
		"description": description,
		"isPublished": isPublished,
		"date":        time.Now().UTC(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var notice models.Notice
	err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&notice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoticeNotFound
		}
		return nil, fmt.Errorf("error updating notice: %w", err)
	}
	return &notice, nil
}

// Delete removes a notice by id
func (r *NoticeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting notice: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNoticeNotFound
	}
	return nil
}
