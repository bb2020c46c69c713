package entities

// PatientStatus represents the lifecycle status of a patient
type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "Active"
	PatientStatusInactive PatientStatus = "Inactive"
	PatientStatusNew      PatientStatus = "New"
)

// DefaultAvatarURL is used when a record carries no avatar reference
const DefaultAvatarURL = "https://via.placeholder.com/150"

// Patient represents a patient of the clinic. Dates are kept as strings
// in the application shape: DOB and LastVisit are date strings
// (YYYY-MM-DD), NextAppointment is an ISO 8601 instant.
type Patient struct {
	ID              string        `json:"id" db:"id"`
	Name            string        `json:"name" db:"name"`
	Avatar          string        `json:"avatar" db:"avatar_url"`
	DOB             string        `json:"dob" db:"dob"`
	Phone           string        `json:"phone" db:"phone"`
	Email           string        `json:"email" db:"email"`
	LastVisit       string        `json:"lastVisit" db:"last_visit"`
	NextAppointment string        `json:"nextAppointment,omitempty"`
	Status          PatientStatus `json:"status" db:"status"`
	Address         string        `json:"address" db:"address"`
}
