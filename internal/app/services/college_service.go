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

// CollegeService handles college catalog operations
type CollegeService struct {
	collegeRepo CollegeStore
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo CollegeStore) *CollegeService {
	return &CollegeService{collegeRepo: collegeRepo}
}

// List returns the full college catalog. Public.
func (s *CollegeService) List(ctx context.Context) ([]*models.College, error) {
	colleges, err := s.collegeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, nil
}

// Create adds a college to the catalog. Admin only.
func (s *CollegeService) Create(ctx context.Context, caller Identity, req *dto.CreateCollegeRequest) (*models.College, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: college name is required", apperrors.ErrValidationFailed)
	}

	college := &models.College{
		Name:     strings.TrimSpace(req.Name),
		Branches: branchesFromRequests(req.Branches),
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, fmt.Errorf("error creating college: %w", err)
	}
	return college, nil
}

// Update changes a college's name and, when a branches array is
// supplied, replaces its entire branch list. Admin only.
func (s *CollegeService) Update(ctx context.Context, caller Identity, req *dto.UpdateCollegeRequest) (*models.College, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	oid, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid college id", apperrors.ErrValidationFailed)
	}

	var branches *[]models.Branch
	if req.Branches != nil {
		bs := branchesFromRequests(*req.Branches)
		branches = &bs
	}

	college, err := s.collegeRepo.Update(ctx, oid, strings.TrimSpace(req.Name), branches)
	if err != nil {
		if errors.Is(err, repositories.ErrCollegeNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error updating college: %w", err)
	}
	return college, nil
}

// Delete removes a college from the catalog. Admin only. Existing
// applications keep their college reference as a dangling id.
func (s *CollegeService) Delete(ctx context.Context, caller Identity, id string) error {
	if !caller.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid college id", apperrors.ErrValidationFailed)
	}

	if err := s.collegeRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repositories.ErrCollegeNotFound) {
			return apperrors.ErrCollegeNotFound
		}
		return fmt.Errorf("error deleting college: %w", err)
	}
	return nil
}

// branchesFromRequests maps request branches onto models, keeping order
// and skipping blank names. Ids are assigned by the repository.
func branchesFromRequests(reqs []dto.BranchRequest) []models.Branch {
	branches := make([]models.Branch, 0, len(reqs))
	for _, b := range reqs {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			continue
		}
		branches = append(branches, models.Branch{Name: name})
	}
	return branches
}
