package entities

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment represents a scheduled visit for a single patient.
// PatientName and PatientAvatar are a read-time display cache joined in
// by the data layer; they are never persisted.
type Appointment struct {
	ID            string            `json:"id" db:"id"`
	PatientID     string            `json:"patientId" db:"patient_id"`
	PatientName   string            `json:"patientName,omitempty"`
	PatientAvatar string            `json:"patientAvatar,omitempty"`
	DateTime      string            `json:"dateTime" db:"date_time"`
	Type          string            `json:"type" db:"type"`
	Status        AppointmentStatus `json:"status" db:"status"`
	Notes         string            `json:"notes" db:"notes"`
	DentistID     string            `json:"dentistId,omitempty" db:"dentist_id"`
}
