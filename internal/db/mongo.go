package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arnab/campusgate/internal/config"
)

// Collection names used by the repositories
const (
	UsersCollection        = "users"
	ApplicationsCollection = "applications"
	CollegesCollection     = "colleges"
	NoticesCollection      = "notices"
	ContactsCollection     = "contacts"
)

// MongoDB wraps the client and the portal database handle
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	timeout  time.Duration
}

// NewMongoDB establishes the database connection
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	timeout, err := time.ParseDuration(cfg.Database.Timeout)
	if err != nil {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database.Name),
		timeout:  timeout,
	}, nil
}

// EnsureIndexes creates the indexes the store relies on. Email
// uniqueness is enforced here, at write time, by the store itself.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	users := m.Database.Collection(UsersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	apps := m.Database.Collection(ApplicationsCollection)
	_, err = apps.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create applications userId index: %w", err)
	}

	return nil
}

// Close disconnects the client
func (m *MongoDB) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// IsDuplicateKeyError reports whether err is a unique index violation
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
