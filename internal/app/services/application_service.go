package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/app/repositories"
	"github.com/arnab/campusgate/internal/pkg/apperrors"
	"github.com/arnab/campusgate/internal/pkg/validation"
)

// DocumentStorage stores uploaded identity documents and returns the
// URL the stored file is reachable at.
type DocumentStorage interface {
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)
}

// ApplicationService handles admission application operations
type ApplicationService struct {
	applicationRepo ApplicationStore
	collegeRepo     CollegeStore
	userRepo        UserStore
	storage         DocumentStorage
}

// NewApplicationService creates a new application service instance
func NewApplicationService(applicationRepo ApplicationStore, collegeRepo CollegeStore, userRepo UserStore, storage DocumentStorage) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		collegeRepo:     collegeRepo,
		userRepo:        userRepo,
		storage:         storage,
	}
}

// validateSubmission checks the required fields and patterns, reporting
// the first violated constraint.
func validateSubmission(req *dto.SubmitApplicationRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidEmail(req.Email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidPhone(req.PhoneNumber) {
		return fmt.Errorf("%w: phone number must be 10 digits", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidPhone(req.GuardianNumber) {
		return fmt.Errorf("%w: guardian phone number must be 10 digits", apperrors.ErrValidationFailed)
	}
	if req.Class12Marks == nil || !validation.IsValidMarks(*req.Class12Marks) {
		return fmt.Errorf("%w: class 12 marks must be between 0 and 100", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidPinCode(req.PinCode) {
		return fmt.Errorf("%w: PIN code must be 6 digits", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.State) == "" {
		return fmt.Errorf("%w: state is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: city is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.PassingYear) == "" {
		return fmt.Errorf("%w: passing year is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// Submit validates and persists a new application. The owning user is
// the authenticated caller, never a client-supplied value.
func (s *ApplicationService) Submit(ctx context.Context, caller Identity, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	callerID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid caller identity", apperrors.ErrTokenInvalid)
	}

	// The token may outlive the account it was issued for
	if _, err := s.userRepo.GetByID(ctx, callerID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error checking user: %w", err)
	}

	collegeID, err := primitive.ObjectIDFromHex(req.CollegeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid college id", apperrors.ErrValidationFailed)
	}
	branchID, err := primitive.ObjectIDFromHex(req.BranchID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid branch id", apperrors.ErrValidationFailed)
	}

	college, err := s.collegeRepo.GetByID(ctx, collegeID)
	if err != nil {
		if errors.Is(err, repositories.ErrCollegeNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error checking college: %w", err)
	}
	if college.FindBranch(branchID) == nil {
		return nil, apperrors.ErrBranchNotFound
	}

	app := &models.Application{
		UserID:         callerID,
		CollegeID:      collegeID,
		BranchID:       branchID,
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		PhoneNumber:    req.PhoneNumber,
		GuardianNumber: req.GuardianNumber,
		Class12Marks:   req.Class12Marks,
		PinCode:        req.PinCode,
		State:          strings.TrimSpace(req.State),
		City:           strings.TrimSpace(req.City),
		Address:        strings.TrimSpace(req.Address),
		PassingYear:    strings.TrimSpace(req.PassingYear),
		LateralEntry:   req.LateralEntry,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("error creating application: %w", err)
	}
	return app, nil
}

// ListAll returns every application, newest first. Admin only.
func (s *ApplicationService) ListAll(ctx context.Context, caller Identity) ([]*models.Application, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	apps, err := s.applicationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	return apps, nil
}

// ListByUser returns the applications owned by userID. The caller must
// be that user or an admin.
func (s *ApplicationService) ListByUser(ctx context.Context, caller Identity, userID string) ([]*models.Application, error) {
	if caller.ID != userID && !caller.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", apperrors.ErrValidationFailed)
	}

	apps, err := s.applicationRepo.GetByUserID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	return apps, nil
}

// Delete removes an application. Only the owner or an admin may delete
// it; an unknown id is NotFound regardless of the caller.
func (s *ApplicationService) Delete(ctx context.Context, caller Identity, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid application id", apperrors.ErrValidationFailed)
	}

	app, err := s.applicationRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("error retrieving application: %w", err)
	}

	if app.UserID.Hex() != caller.ID && !caller.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.applicationRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("error deleting application: %w", err)
	}
	return nil
}

// AttachDocuments stores the uploaded identity documents for an
// application and records their URLs. Either file may be nil.
func (s *ApplicationService) AttachDocuments(ctx context.Context, caller Identity, id string, aadharCard, markSheet *multipart.FileHeader) (*models.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid application id", apperrors.ErrValidationFailed)
	}

	app, err := s.applicationRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	if app.UserID.Hex() != caller.ID && !caller.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	if aadharCard == nil && markSheet == nil {
		return nil, fmt.Errorf("%w: at least one document is required", apperrors.ErrValidationFailed)
	}

	var aadharURL, markSheetURL string
	if aadharCard != nil {
		aadharURL, err = s.storage.SaveFileWithPath(aadharCard, "documents")
		if err != nil {
			return nil, fmt.Errorf("error storing aadhar card: %w", err)
		}
	}
	if markSheet != nil {
		markSheetURL, err = s.storage.SaveFileWithPath(markSheet, "documents")
		if err != nil {
			return nil, fmt.Errorf("error storing mark sheet: %w", err)
		}
	}

	updated, err := s.applicationRepo.SetDocumentURLs(ctx, oid, aadharURL, markSheetURL)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error updating application documents: %w", err)
	}
	return updated, nil
}
