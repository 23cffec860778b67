package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/app/repositories"
)

// In-memory store fakes used by the service tests.

type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return repositories.ErrEmailAlreadyExists
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

type fakeApplicationStore struct {
	apps map[primitive.ObjectID]*models.Application
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[primitive.ObjectID]*models.Application)}
}

func (s *fakeApplicationStore) Create(_ context.Context, app *models.Application) error {
	app.ID = primitive.NewObjectID()
	s.apps[app.ID] = app
	return nil
}

func (s *fakeApplicationStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Application, error) {
	if a, ok := s.apps[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (s *fakeApplicationStore) GetAll(_ context.Context) ([]*models.Application, error) {
	out := make([]*models.Application, 0, len(s.apps))
	for _, a := range s.apps {
		out = append(out, a)
	}
	sortApplicationsNewestFirst(out)
	return out, nil
}

func (s *fakeApplicationStore) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range s.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sortApplicationsNewestFirst(out)
	return out, nil
}

func (s *fakeApplicationStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.apps[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(s.apps, id)
	return nil
}

func (s *fakeApplicationStore) SetDocumentURLs(_ context.Context, id primitive.ObjectID, aadharURL, markSheetURL string) (*models.Application, error) {
	a, ok := s.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	if aadharURL != "" {
		a.AadharCardURL = aadharURL
	}
	if markSheetURL != "" {
		a.Class12MarkSheetURL = markSheetURL
	}
	return a, nil
}

func sortApplicationsNewestFirst(apps []*models.Application) {
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].ID.Hex() > apps[j].ID.Hex()
	})
}

type fakeCollegeStore struct {
	colleges map[primitive.ObjectID]*models.College
}

func newFakeCollegeStore() *fakeCollegeStore {
	return &fakeCollegeStore{colleges: make(map[primitive.ObjectID]*models.College)}
}

func (s *fakeCollegeStore) Create(_ context.Context, college *models.College) error {
	college.ID = primitive.NewObjectID()
	for i := range college.Branches {
		if college.Branches[i].ID.IsZero() {
			college.Branches[i].ID = primitive.NewObjectID()
		}
	}
	s.colleges[college.ID] = college
	return nil
}

func (s *fakeCollegeStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.College, error) {
	if c, ok := s.colleges[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrCollegeNotFound
}

func (s *fakeCollegeStore) GetAll(_ context.Context) ([]*models.College, error) {
	out := make([]*models.College, 0, len(s.colleges))
	for _, c := range s.colleges {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeCollegeStore) Update(_ context.Context, id primitive.ObjectID, name string, branches *[]models.Branch) (*models.College, error) {
	c, ok := s.colleges[id]
	if !ok {
		return nil, repositories.ErrCollegeNotFound
	}
	if name != "" {
		c.Name = name
	}
	if branches != nil {
		bs := *branches
		for i := range bs {
			if bs[i].ID.IsZero() {
				bs[i].ID = primitive.NewObjectID()
			}
		}
		c.Branches = bs
	}
	return c, nil
}

func (s *fakeCollegeStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.colleges[id]; !ok {
		return repositories.ErrCollegeNotFound
	}
	delete(s.colleges, id)
	return nil
}

type fakeNoticeStore struct {
	notices []*models.Notice
}

func newFakeNoticeStore() *fakeNoticeStore {
	return &fakeNoticeStore{}
}

func (s *fakeNoticeStore) Create(_ context.Context, notice *models.Notice) error {
	notice.ID = primitive.NewObjectID()
	if notice.Date.IsZero() {
		notice.Date = time.Now().UTC()
	}
	s.notices = append(s.notices, notice)
	return nil
}

func (s *fakeNoticeStore) GetAll(_ context.Context, publishedOnly bool) ([]*models.Notice, error) {
	var out []*models.Notice
	for _, n := range s.notices {
		if publishedOnly && !n.IsPublished {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (s *fakeNoticeStore) Update(_ context.Context, id primitive.ObjectID, title, description string, isPublished bool) (*models.Notice, error) {
	for _, n := range s.notices {
		if n.ID == id {
			n.Title = title
			n.Description = description
			n.IsPublished = isPublished
			n.Date = time.Now().UTC()
			return n, nil
		}
	}
	return nil, repositories.ErrNoticeNotFound
}

func (s *fakeNoticeStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, n := range s.notices {
		if n.ID == id {
			s.notices = append(s.notices[:i], s.notices[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNoticeNotFound
}

type fakeContactStore struct {
	contacts []*models.Contact
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{}
}

func (s *fakeContactStore) Create(_ context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()
	s.contacts = append(s.contacts, contact)
	return nil
}

func (s *fakeContactStore) GetAll(_ context.Context) ([]*models.Contact, error) {
	out := make([]*models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}
