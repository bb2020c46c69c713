// Package memory implements the repository contracts against an
// in-process sample store. It is selected when no remote store is
// configured; records live for the process lifetime only and writes are
// visible to every subsequent read in the same process.
package memory

import (
	"sync"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
)

// Store owns the sample collections. It is an explicit object injected
// into the adapters rather than package-level state, so tests get an
// isolated store per case. The original runtime had no parallel
// mutation; here the HTTP server does, hence the mutex.
type Store struct {
	mu           sync.Mutex
	patients     []*entities.Patient
	appointments []*entities.Appointment
	invoices     []*entities.Invoice
	currentUser  entities.User
}

// NewStore creates an empty store with the given fixed identity
func NewStore(currentUser entities.User) *Store {
	return &Store{currentUser: currentUser}
}

// NewSeededStore creates a store pre-populated with the sample records
func NewSeededStore() *Store {
	store := NewStore(seedUser())
	store.patients = seedPatients()
	store.appointments = seedAppointments()
	store.invoices = seedInvoices()
	return store
}

// Patients returns a snapshot of the patient collection in insertion order
func (s *Store) Patients() []*entities.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entities.Patient{}, s.patients...)
}

// PatientByID returns the patient with the given id, or nil
func (s *Store) PatientByID(id string) *entities.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, patient := range s.patients {
		if patient.ID == id {
			return patient
		}
	}
	return nil
}

// AddPatient appends a patient to the collection
func (s *Store) AddPatient(patient *entities.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = append(s.patients, patient)
}

// Appointments returns a snapshot of the appointment collection
func (s *Store) Appointments() []*entities.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entities.Appointment{}, s.appointments...)
}

// AddAppointment appends an appointment to the collection
func (s *Store) AddAppointment(appointment *entities.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, appointment)
}

// Invoices returns a snapshot of the invoice collection
func (s *Store) Invoices() []*entities.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entities.Invoice{}, s.invoices...)
}

// PrependInvoice puts an invoice at the front of the collection, the
// position the billing list shows newest-first
func (s *Store) PrependInvoice(invoice *entities.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append([]*entities.Invoice{invoice}, s.invoices...)
}

// CurrentUser returns a copy of the fixed local identity
func (s *Store) CurrentUser() entities.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}
