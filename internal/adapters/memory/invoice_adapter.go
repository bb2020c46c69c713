package memory

import (
	"context"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
)

// InvoiceAdapter implements the InvoiceRepository interface over the
// in-process store
type InvoiceAdapter struct {
	store *Store
}

// NewInvoiceAdapter creates a new invoice adapter
func NewInvoiceAdapter(store *Store) repositories.InvoiceRepository {
	return &InvoiceAdapter{store: store}
}

// List returns the sample collection, items included
func (a *InvoiceAdapter) List(ctx context.Context) ([]*entities.Invoice, error) {
	return a.store.Invoices(), nil
}

// Create prepends the complete invoice, items and all
func (a *InvoiceAdapter) Create(ctx context.Context, invoice *entities.Invoice) error {
	created := *invoice
	a.store.PrependInvoice(&created)
	return nil
}
