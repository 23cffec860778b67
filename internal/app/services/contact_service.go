package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/pkg/apperrors"
	"github.com/arnab/campusgate/internal/pkg/validation"
)

// ContactService handles public inquiry submissions
type ContactService struct {
	contactRepo ContactStore
}

// NewContactService creates a new contact service instance
func NewContactService(contactRepo ContactStore) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// Submit records an inquiry from the public contact form
func (s *ContactService) Submit(ctx context.Context, req *dto.CreateContactRequest) (*models.Contact, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	if req.PhoneNumber != "" && !validation.IsValidPhone(req.PhoneNumber) {
		return nil, fmt.Errorf("%w: phone number must be 10 digits", apperrors.ErrValidationFailed)
	}

	contact := &models.Contact{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: req.PhoneNumber,
		Subject:     strings.TrimSpace(req.Subject),
		Address:     strings.TrimSpace(req.Address),
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("error creating contact: %w", err)
	}
	return contact, nil
}

// List returns every inquiry, newest first
func (s *ContactService) List(ctx context.Context) ([]*models.Contact, error) {
	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving contacts: %w", err)
	}
	return contacts, nil
}
