package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalflow/clinic-backend/internal/adapters/database"
	"github.com/dentalflow/clinic-backend/internal/domain/entities"
)

func TestAppointmentAdapter_ListAll(t *testing.T) {
	cols := []string{
		"id", "patient_id", "date_time", "type", "status", "notes",
		"dentist_id", "name", "avatar_url",
	}

	t.Run("flattens the patient join into display fields", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewAppointmentAdapter(client)

		mock.ExpectQuery(`SELECT .* FROM "appointments" LEFT JOIN "patients"`).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("a1", "p1", "2024-04-22T10:00:00", "Routine Check-up",
					"Scheduled", "Patient reported minor sensitivity.", nil,
					"Olivia Rhye", "https://i.pravatar.cc/150?img=1").
				AddRow("a2", "p-gone", "2024-05-10T14:30:00", "Root Canal",
					"Scheduled", "", nil, nil, nil))

		appointments, err := adapter.ListAll(context.Background())

		require.NoError(t, err)
		require.Len(t, appointments, 2)
		assert.Equal(t, "Olivia Rhye", appointments[0].PatientName)
		assert.Equal(t, "https://i.pravatar.cc/150?img=1", appointments[0].PatientAvatar)
		assert.Equal(t, entities.AppointmentStatusScheduled, appointments[0].Status)

		// Dangling patient reference leaves the display fields absent.
		assert.Equal(t, "", appointments[1].PatientName)
		assert.Equal(t, "", appointments[1].PatientAvatar)
	})
}

func TestAppointmentAdapter_ListByPatient(t *testing.T) {
	t.Run("filters without joining display fields", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewAppointmentAdapter(client)

		mock.ExpectQuery(`SELECT .* FROM "appointments" WHERE \("patient_id" = 'p1'\)`).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "patient_id", "date_time", "type", "status", "notes", "dentist_id",
			}).AddRow("a1", "p1", "2024-04-22T10:00:00", "Routine Check-up",
				"Scheduled", "Patient reported minor sensitivity.", "d1"))

		appointments, err := adapter.ListByPatient(context.Background(), "p1")

		require.NoError(t, err)
		require.Len(t, appointments, 1)
		assert.Equal(t, "p1", appointments[0].PatientID)
		assert.Equal(t, "d1", appointments[0].DentistID)
		assert.Equal(t, "", appointments[0].PatientName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAppointmentAdapter_Create(t *testing.T) {
	t.Run("inserts with translated field names", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewAppointmentAdapter(client)

		mock.ExpectExec(`INSERT INTO "appointments"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := adapter.Create(context.Background(), &entities.Appointment{
			PatientID: "p1",
			DateTime:  "2024-06-01T09:00:00",
			Type:      "Consultation",
			Status:    entities.AppointmentStatusScheduled,
			Notes:     "New patient intake.",
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure propagates for the caller to handle", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewAppointmentAdapter(client)

		mock.ExpectExec(`INSERT INTO "appointments"`).
			WillReturnError(errors.New("foreign key violation"))

		err := adapter.Create(context.Background(), &entities.Appointment{
			PatientID: "no-such-patient",
			DateTime:  "2024-06-01T09:00:00",
		})

		require.Error(t, err)
	})
}
