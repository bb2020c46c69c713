package repositories

import (
	"context"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	// ListAll retrieves every appointment with the referenced patient's
	// name and avatar joined into the display cache fields.
	ListAll(ctx context.Context) ([]*entities.Appointment, error)

	// ListByPatient retrieves the appointments of one patient. Unlike
	// ListAll this does not join the patient display fields; callers in
	// scope tolerate their absence here.
	ListByPatient(ctx context.Context, patientID string) ([]*entities.Appointment, error)

	// Create stores a new appointment. The input carries no ID and no
	// display cache fields.
	Create(ctx context.Context, appointment *entities.Appointment) error
}
