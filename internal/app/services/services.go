package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arnab/campusgate/internal/app/models"
)

// Identity is the authenticated caller established by the auth
// gateway. Endpoints use it for ownership and role checks; they never
// re-verify the token signature.
type Identity struct {
	ID    string
	Email string
	Role  models.RoleType
}

// IsAdmin reports whether the caller holds the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// UserStore is the persistence surface the services need for users
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// ApplicationStore is the persistence surface for applications
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	GetAll(ctx context.Context) ([]*models.Application, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Application, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetDocumentURLs(ctx context.Context, id primitive.ObjectID, aadharURL, markSheetURL string) (*models.Application, error)
}

// CollegeStore is the persistence surface for colleges
type CollegeStore interface {
	Create(ctx context.Context, college *models.College) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.College, error)
	GetAll(ctx context.Context) ([]*models.College, error)
	Update(ctx context.Context, id primitive.ObjectID, name string, branches *[]models.Branch) (*models.College, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// NoticeStore is the persistence surface for notices
type NoticeStore interface {
	Create(ctx context.Context, notice *models.Notice) error
	GetAll(ctx context.Context, publishedOnly bool) ([]*models.Notice, error)
	Update(ctx context.Context, id primitive.ObjectID, title, description string, isPublished bool) (*models.Notice, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ContactStore is the persistence surface for contact inquiries
type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]*models.Contact, error)
}
