package repositories

import (
	"context"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
)

// PatientRepository defines the interface for patient data operations
type PatientRepository interface {
	// List retrieves all patients in insertion order
	List(ctx context.Context) ([]*entities.Patient, error)

	// GetByID retrieves a patient by ID. A missing record yields a
	// typed not-found error, never a nil record with nil error.
	GetByID(ctx context.Context, id string) (*entities.Patient, error)

	// Create stores a new patient. The input carries no ID; the stored
	// record is returned with its backend-assigned key.
	Create(ctx context.Context, patient *entities.Patient) (*entities.Patient, error)
}
