package memory

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

// PatientAdapter implements the PatientRepository interface over the
// in-process store
type PatientAdapter struct {
	store *Store
}

// NewPatientAdapter creates a new patient adapter
func NewPatientAdapter(store *Store) repositories.PatientRepository {
	return &PatientAdapter{store: store}
}

// List returns the sample collection in insertion order
func (a *PatientAdapter) List(ctx context.Context) ([]*entities.Patient, error) {
	return a.store.Patients(), nil
}

// GetByID searches the collection for a matching id
func (a *PatientAdapter) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	patient := a.store.PatientByID(id)
	if patient == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("patient with id %s not found", id))
	}
	copied := *patient
	return &copied, nil
}

// Create synthesizes a time-based id and appends the new record; the
// write is visible to every subsequent read in this process.
func (a *PatientAdapter) Create(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	created := *patient
	created.ID = newID()
	a.store.AddPatient(&created)

	reflected := created
	return &reflected, nil
}

// newID synthesizes a time-based unique id
func newID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
