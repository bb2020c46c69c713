package services

import (
	"context"
	"strings"
	"time"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

// AppointmentService handles schedule logic
type AppointmentService struct {
	repo repositories.AppointmentRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(repo repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

// ListAll returns the full schedule with patient display fields attached
func (s *AppointmentService) ListAll(ctx context.Context) ([]*entities.Appointment, error) {
	return s.repo.ListAll(ctx)
}

// ListByPatient returns the schedule for a single patient
func (s *AppointmentService) ListByPatient(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, apperrors.NewValidationError("patient id is required")
	}
	return s.repo.ListByPatient(ctx, patientID)
}

// Book stores a new appointment. Patient display fields are filled by
// the store, so any caller-supplied values are discarded first.
func (s *AppointmentService) Book(ctx context.Context, appointment *entities.Appointment) (*entities.Appointment, error) {
	if strings.TrimSpace(appointment.PatientID) == "" {
		return nil, apperrors.NewValidationError("patient id is required")
	}
	if strings.TrimSpace(appointment.DateTime) == "" {
		return nil, apperrors.NewValidationError("appointment date is required")
	}
	if !validDateTime(appointment.DateTime) {
		return nil, apperrors.NewValidationError("appointment date must be an ISO 8601 instant")
	}

	if appointment.Status == "" {
		appointment.Status = entities.AppointmentStatusScheduled
	}
	appointment.PatientName = ""
	appointment.PatientAvatar = ""

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Stored instants may carry an offset or not; both forms are accepted.
func validDateTime(value string) bool {
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02T15:04:05", value)
	return err == nil
}
