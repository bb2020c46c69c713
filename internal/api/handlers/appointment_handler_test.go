package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalflow/clinic-backend/internal/api/handlers"
	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

type stubAppointmentService struct {
	all       []*entities.Appointment
	byPatient []*entities.Appointment
	booked    *entities.Appointment
	err       error
}

func (s *stubAppointmentService) ListAll(ctx context.Context) ([]*entities.Appointment, error) {
	return s.all, s.err
}

func (s *stubAppointmentService) ListByPatient(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	return s.byPatient, s.err
}

func (s *stubAppointmentService) Book(ctx context.Context, appointment *entities.Appointment) (*entities.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.booked = appointment
	return appointment, nil
}

func TestAppointmentHandler_ListAppointments(t *testing.T) {
	service := &stubAppointmentService{all: []*entities.Appointment{
		{ID: "appt1", PatientID: "p1", PatientName: "Olivia Rhye"},
	}}
	handler := handlers.NewAppointmentHandler(service)

	req := httptest.NewRequest("GET", "/api/appointments", nil)
	w := httptest.NewRecorder()

	handler.ListAppointments(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []*entities.Appointment
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, "Olivia Rhye", response[0].PatientName)
}

func TestAppointmentHandler_ListPatientAppointments(t *testing.T) {
	t.Run("responds with the patient's schedule", func(t *testing.T) {
		service := &stubAppointmentService{byPatient: []*entities.Appointment{
			{ID: "appt2", PatientID: "p2"},
		}}
		handler := handlers.NewAppointmentHandler(service)

		req := httptest.NewRequest("GET", "/api/patients/p2/appointments", nil)
		req.SetPathValue("id", "p2")
		w := httptest.NewRecorder()

		handler.ListPatientAppointments(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing id responds 400", func(t *testing.T) {
		handler := handlers.NewAppointmentHandler(&stubAppointmentService{})

		req := httptest.NewRequest("GET", "/api/patients//appointments", nil)
		w := httptest.NewRecorder()

		handler.ListPatientAppointments(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAppointmentHandler_BookAppointment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service := &stubAppointmentService{}
		handler := handlers.NewAppointmentHandler(service)

		body := `{"patientId":"p1","dateTime":"2024-08-01T10:00:00","type":"Check-up"}`
		req := httptest.NewRequest("POST", "/api/appointments", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.BookAppointment(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, service.booked)
		assert.Equal(t, "p1", service.booked.PatientID)
	})

	t.Run("validation error responds 400", func(t *testing.T) {
		service := &stubAppointmentService{err: apperrors.NewValidationError("patient id is required")}
		handler := handlers.NewAppointmentHandler(service)

		req := httptest.NewRequest("POST", "/api/appointments", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		handler.BookAppointment(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
