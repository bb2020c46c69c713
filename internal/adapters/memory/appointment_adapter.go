package memory

import (
	"context"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
)

// AppointmentAdapter implements the AppointmentRepository interface
// over the in-process store
type AppointmentAdapter struct {
	store *Store
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(store *Store) repositories.AppointmentRepository {
	return &AppointmentAdapter{store: store}
}

// ListAll returns every appointment. Local records already carry their
// display cache fields from creation time.
func (a *AppointmentAdapter) ListAll(ctx context.Context) ([]*entities.Appointment, error) {
	return a.store.Appointments(), nil
}

// ListByPatient filters the collection by patient id
func (a *AppointmentAdapter) ListByPatient(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	filtered := []*entities.Appointment{}
	for _, appointment := range a.store.Appointments() {
		if appointment.PatientID == patientID {
			filtered = append(filtered, appointment)
		}
	}
	return filtered, nil
}

// Create synthesizes an id and appends the appointment, snapshotting
// the referenced patient's name and avatar into the display cache. A
// dangling patient reference leaves those fields absent; it is not an
// error.
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	appointment.ID = newID()

	if patient := a.store.PatientByID(appointment.PatientID); patient != nil {
		appointment.PatientName = patient.Name
		appointment.PatientAvatar = patient.Avatar
	}

	created := *appointment
	a.store.AddAppointment(&created)
	return nil
}
