// Package database implements the repository contracts against the
// remote relational backend. Rows live in the backend's snake_case
// convention; every adapter owns an explicit, total field mapping to
// the application's camelCase shape. Date columns are stored as text,
// matching the application's string-date model. Failures are wrapped
// and propagated, never retried or swallowed.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

var patientColumns = []interface{}{
	"id", "name", "email", "phone", "dob", "address", "status", "avatar_url", "last_visit",
}

// PatientAdapter implements the PatientRepository interface
type PatientAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPatientAdapter creates a new patient adapter
func NewPatientAdapter(client *postgres.Client) repositories.PatientRepository {
	return &PatientAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves all patient rows
func (a *PatientAdapter) List(ctx context.Context) ([]*entities.Patient, error) {
	query, args, err := a.db.Select(patientColumns...).From("patients").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build patients query", err)
	}

	rows, err := a.client.QueryContext(ctx, "patients.list", query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list patients", err)
	}
	defer rows.Close()

	patients := []*entities.Patient{}
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan patient row", err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read patient rows", err)
	}

	return patients, nil
}

// GetByID retrieves a patient by ID
func (a *PatientAdapter) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	query, args, err := a.db.Select(patientColumns...).From("patients").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build patient query", err)
	}

	patient, err := scanPatient(a.client.QueryRowContext(ctx, "patients.get", query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("patient with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get patient", err)
	}

	return patient, nil
}

// Create inserts one patient row and reflects the stored row back
func (a *PatientAdapter) Create(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	record := goqu.Record{
		"name":       patient.Name,
		"email":      patient.Email,
		"phone":      patient.Phone,
		"dob":        patient.DOB,
		"address":    patient.Address,
		"status":     patient.Status,
		"avatar_url": patient.Avatar,
	}

	query, args, err := a.db.Insert("patients").Rows(record).
		Returning(patientColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build patient insert", err)
	}

	created, err := scanPatient(a.client.QueryRowContext(ctx, "patients.create", query, args...))
	if err != nil {
		// Constraint violations included; the caller decides recovery.
		return nil, apperrors.NewInternalError("failed to create patient", err)
	}

	return created, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPatient maps one backend row into the application shape:
// avatar_url becomes Avatar (placeholder when absent), last_visit
// becomes LastVisit. Unknown backend columns are never selected, so
// they are ignored by construction.
func scanPatient(row rowScanner) (*entities.Patient, error) {
	patient := &entities.Patient{}
	var avatarURL, lastVisit sql.NullString

	err := row.Scan(
		&patient.ID,
		&patient.Name,
		&patient.Email,
		&patient.Phone,
		&patient.DOB,
		&patient.Address,
		&patient.Status,
		&avatarURL,
		&lastVisit,
	)
	if err != nil {
		return nil, err
	}

	patient.Avatar = avatarURL.String
	if patient.Avatar == "" {
		patient.Avatar = entities.DefaultAvatarURL
	}
	patient.LastVisit = lastVisit.String

	return patient, nil
}
