package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/app/repositories"
	"github.com/arnab/campusgate/internal/pkg/apperrors"
)

// NoticeService handles portal announcements
type NoticeService struct {
	noticeRepo NoticeStore
	userRepo   UserStore
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(noticeRepo NoticeStore, userRepo UserStore) *NoticeService {
	return &NoticeService{
		noticeRepo: noticeRepo,
		userRepo:   userRepo,
	}
}

// List returns notices newest first. Admin callers see every notice;
// everyone else, including anonymous readers, sees only published ones.
// A nil caller means the request carried no usable token.
func (s *NoticeService) List(ctx context.Context, caller *Identity) ([]*models.Notice, error) {
	publishedOnly := caller == nil || !caller.IsAdmin()

	// The widened admin view requires the admin account to still exist
	if !publishedOnly {
		if err := s.requireAdmin(ctx, *caller); err != nil {
			return nil, err
		}
	}

	notices, err := s.noticeRepo.GetAll(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notices: %w", err)
	}
	return dedupeNotices(notices), nil
}

// requireAdmin verifies the caller is an admin whose account still
// exists. A valid token for a deleted admin must not authorize writes.
func (s *NoticeService) requireAdmin(ctx context.Context, caller Identity) error {
	if !caller.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	oid, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid caller identity", apperrors.ErrTokenInvalid)
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error checking user: %w", err)
	}
	if user.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// Create publishes (or drafts) a new notice. Admin only.
func (s *NoticeService) Create(ctx context.Context, caller Identity, req *dto.CreateNoticeRequest) (*models.Notice, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidationFailed)
	}

	notice := &models.Notice{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
	}
	if req.IsPublished != nil {
		notice.IsPublished = *req.IsPublished
	}

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, fmt.Errorf("error creating notice: %w", err)
	}
	return notice, nil
}

// Update replaces a notice's content and publish flag. Admin only.
func (s *NoticeService) Update(ctx context.Context, caller Identity, req *dto.UpdateNoticeRequest) (*models.Notice, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid notice id", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidationFailed)
	}

	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	notice, err := s.noticeRepo.Update(ctx, oid, strings.TrimSpace(req.Title), strings.TrimSpace(req.Description), isPublished)
	if err != nil {
		if errors.Is(err, repositories.ErrNoticeNotFound) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("error updating notice: %w", err)
	}
	return notice, nil
}

// Delete removes a notice. Admin only.
func (s *NoticeService) Delete(ctx context.Context, caller Identity, id string) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid notice id", apperrors.ErrValidationFailed)
	}

	if err := s.noticeRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repositories.ErrNoticeNotFound) {
			return apperrors.ErrNoticeNotFound
		}
		return fmt.Errorf("error deleting notice: %w", err)
	}
	return nil
}

// dedupeNotices drops repeated ids while keeping first-seen order
func dedupeNotices(notices []*models.Notice) []*models.Notice {
	seen := make(map[primitive.ObjectID]struct{}, len(notices))
	out := notices[:0]
	for _, n := range notices {
		if _, ok := seen[n.ID]; ok {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}
	return out
}
