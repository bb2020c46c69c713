package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalflow/clinic-backend/internal/adapters/memory"
	"github.com/dentalflow/clinic-backend/internal/domain/entities"
)

func TestAppointmentAdapter_Create(t *testing.T) {
	t.Run("snapshots patient display fields at creation time", func(t *testing.T) {
		store := memory.NewSeededStore()
		adapter := memory.NewAppointmentAdapter(store)

		err := adapter.Create(context.Background(), &entities.Appointment{
			PatientID: "p2",
			DateTime:  "2024-06-01T09:00:00",
			Type:      "Filling",
			Status:    entities.AppointmentStatusScheduled,
		})
		require.NoError(t, err)

		appointments, err := adapter.ListAll(context.Background())
		require.NoError(t, err)

		created := appointments[len(appointments)-1]
		assert.Equal(t, "Phoenix Baker", created.PatientName)
		assert.Equal(t, "https://i.pravatar.cc/150?img=2", created.PatientAvatar)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("dangling patient reference leaves display fields absent", func(t *testing.T) {
		adapter := memory.NewAppointmentAdapter(memory.NewSeededStore())

		err := adapter.Create(context.Background(), &entities.Appointment{
			PatientID: "no-such-patient",
			DateTime:  "2024-06-01T09:00:00",
			Type:      "Filling",
		})
		require.NoError(t, err)

		appointments, err := adapter.ListAll(context.Background())
		require.NoError(t, err)

		created := appointments[len(appointments)-1]
		assert.Equal(t, "", created.PatientName)
		assert.Equal(t, "", created.PatientAvatar)
	})
}

func TestAppointmentAdapter_ListByPatient(t *testing.T) {
	t.Run("is the patient filter of the full list", func(t *testing.T) {
		store := memory.NewSeededStore()
		adapter := memory.NewAppointmentAdapter(store)
		ctx := context.Background()

		require.NoError(t, adapter.Create(ctx, &entities.Appointment{
			PatientID: "p1",
			DateTime:  "2024-07-01T11:00:00",
			Type:      "Whitening",
		}))

		all, err := adapter.ListAll(ctx)
		require.NoError(t, err)

		byPatient, err := adapter.ListByPatient(ctx, "p1")
		require.NoError(t, err)

		expected := []*entities.Appointment{}
		for _, appointment := range all {
			if appointment.PatientID == "p1" {
				expected = append(expected, appointment)
			}
		}
		assert.Equal(t, expected, byPatient)
	})

	t.Run("unknown patient yields an empty list", func(t *testing.T) {
		adapter := memory.NewAppointmentAdapter(memory.NewSeededStore())

		appointments, err := adapter.ListByPatient(context.Background(), "p99")
		require.NoError(t, err)
		assert.Empty(t, appointments)
	})
}
