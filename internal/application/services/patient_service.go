package services

import (
	"context"
	"strings"
	"time"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

// PatientService handles patient directory logic
type PatientService struct {
	repo repositories.PatientRepository
}

// NewPatientService creates a new patient service
func NewPatientService(repo repositories.PatientRepository) *PatientService {
	return &PatientService{repo: repo}
}

// List returns all patients
func (s *PatientService) List(ctx context.Context) ([]*entities.Patient, error) {
	return s.repo.List(ctx)
}

// GetByID returns the patient with the given id, or nil when none
// matches. Absence is a value here, not a failure; backend faults still
// propagate.
func (s *PatientService) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return patient, nil
}

// Register stores a new patient record
func (s *PatientService) Register(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	if strings.TrimSpace(patient.Name) == "" {
		return nil, apperrors.NewValidationError("patient name is required")
	}
	if strings.TrimSpace(patient.Email) == "" {
		return nil, apperrors.NewValidationError("patient email is required")
	}

	if patient.Status == "" {
		patient.Status = entities.PatientStatusNew
	}
	if patient.Avatar == "" {
		patient.Avatar = entities.DefaultAvatarURL
	}
	if patient.LastVisit == "" {
		patient.LastVisit = time.Now().Format("2006-01-02")
	}

	return s.repo.Create(ctx, patient)
}
