package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

// AppointmentAdapter implements the AppointmentRepository interface
type AppointmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(client *postgres.Client) repositories.AppointmentRepository {
	return &AppointmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListAll retrieves every appointment joined with the referenced
// patient's display name and avatar, flattened into the display cache
// fields.
func (a *AppointmentAdapter) ListAll(ctx context.Context) ([]*entities.Appointment, error) {
	query, args, err := a.db.From("appointments").
		LeftJoin(
			goqu.T("patients"),
			goqu.On(goqu.Ex{"appointments.patient_id": goqu.I("patients.id")}),
		).
		Select(
			"appointments.id", "appointments.patient_id", "appointments.date_time",
			"appointments.type", "appointments.status", "appointments.notes",
			"appointments.dentist_id", "patients.name", "patients.avatar_url",
		).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build appointments query", err)
	}

	rows, err := a.client.QueryContext(ctx, "appointments.list_all", query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list appointments", err)
	}
	defer rows.Close()

	appointments := []*entities.Appointment{}
	for rows.Next() {
		appointment := &entities.Appointment{}
		var dentistID, patientName, patientAvatar sql.NullString

		err := rows.Scan(
			&appointment.ID,
			&appointment.PatientID,
			&appointment.DateTime,
			&appointment.Type,
			&appointment.Status,
			&appointment.Notes,
			&dentistID,
			&patientName,
			&patientAvatar,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan appointment row", err)
		}

		appointment.DentistID = dentistID.String
		appointment.PatientName = patientName.String
		appointment.PatientAvatar = patientAvatar.String
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read appointment rows", err)
	}

	return appointments, nil
}

// ListByPatient retrieves one patient's appointments. The patient
// display fields are deliberately not joined here; callers of this path
// tolerate their absence.
func (a *AppointmentAdapter) ListByPatient(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	query, args, err := a.db.Select(
		"id", "patient_id", "date_time", "type", "status", "notes", "dentist_id",
	).From("appointments").
		Where(goqu.Ex{"patient_id": patientID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build appointments query", err)
	}

	rows, err := a.client.QueryContext(ctx, "appointments.list_by_patient", query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list patient appointments", err)
	}
	defer rows.Close()

	appointments := []*entities.Appointment{}
	for rows.Next() {
		appointment := &entities.Appointment{}
		var dentistID sql.NullString

		err := rows.Scan(
			&appointment.ID,
			&appointment.PatientID,
			&appointment.DateTime,
			&appointment.Type,
			&appointment.Status,
			&appointment.Notes,
			&dentistID,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan appointment row", err)
		}

		appointment.DentistID = dentistID.String
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read appointment rows", err)
	}

	return appointments, nil
}

// Create inserts one appointment row with field names translated to the
// backend convention. The display cache fields are never written.
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	record := goqu.Record{
		"patient_id": appointment.PatientID,
		"date_time":  appointment.DateTime,
		"type":       appointment.Type,
		"status":     appointment.Status,
		"notes":      appointment.Notes,
	}

	query, args, err := a.db.Insert("appointments").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build appointment insert", err)
	}

	if _, err := a.client.ExecContext(ctx, "appointments.create", query, args...); err != nil {
		return apperrors.NewInternalError("failed to create appointment", err)
	}

	return nil
}
