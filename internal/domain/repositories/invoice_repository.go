package repositories

import (
	"context"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
)

// InvoiceRepository defines the interface for invoice data operations.
// Invoices are immutable in this layer once stored; there is no update
// or delete operation.
type InvoiceRepository interface {
	// List retrieves all invoices. On the remote backend line items are
	// not joined, so every invoice returned there carries empty Items.
	List(ctx context.Context) ([]*entities.Invoice, error)

	// Create stores a complete invoice including its line items. On the
	// remote backend this is a two-step write (header, then items) with
	// no transaction across the steps: a failed item insert leaves the
	// header persisted.
	Create(ctx context.Context, invoice *entities.Invoice) error
}
