// Package datastore selects the data backend once at process start.
// With valid remote store parameters every repository is backed by the
// remote relational service; without them everything runs on the
// in-process sample store. The choice is immutable for the process
// lifetime and no call falls back across backends.
package datastore

import (
	"github.com/dentalflow/clinic-backend/internal/adapters/database"
	"github.com/dentalflow/clinic-backend/internal/adapters/memory"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/clients/authapi"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/clients/postgres"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/observability"
	"github.com/dentalflow/clinic-backend/pkg/config"
)

// Store bundles the selected repositories
type Store struct {
	Patients     repositories.PatientRepository
	Appointments repositories.AppointmentRepository
	Invoices     repositories.InvoiceRepository
	Identity     repositories.IdentityRepository

	Remote bool

	closeFn func() error
}

// New builds the backend bundle for this process. metrics may be nil
// when telemetry is disabled.
func New(cfg *config.Config, metrics *observability.Metrics) (*Store, error) {
	if !cfg.RemoteStore.Configured() {
		return newLocal(), nil
	}
	return newRemote(&cfg.RemoteStore, metrics)
}

func newLocal() *Store {
	seeded := memory.NewSeededStore()
	return &Store{
		Patients:     memory.NewPatientAdapter(seeded),
		Appointments: memory.NewAppointmentAdapter(seeded),
		Invoices:     memory.NewInvoiceAdapter(seeded),
		Identity:     memory.NewIdentityAdapter(seeded),
	}
}

func newRemote(cfg *config.RemoteStoreConfig, metrics *observability.Metrics) (*Store, error) {
	client, err := postgres.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	client.SetMetrics(metrics)

	auth := authapi.NewClient(cfg.AuthEndpoint(), cfg.ServiceKey)

	return &Store{
		Patients:     database.NewPatientAdapter(client),
		Appointments: database.NewAppointmentAdapter(client),
		Invoices:     database.NewInvoiceAdapter(client),
		Identity:     database.NewIdentityAdapter(auth, client),
		Remote:       true,
		closeFn:      client.Close,
	}, nil
}

// Close releases the remote backend's resources; a no-op for the local store
func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
