package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalflow/clinic-backend/internal/adapters/memory"
	"github.com/dentalflow/clinic-backend/internal/domain/entities"
)

func TestInvoiceAdapter_List(t *testing.T) {
	adapter := memory.NewInvoiceAdapter(memory.NewSeededStore())

	invoices, err := adapter.List(context.Background())

	require.NoError(t, err)
	require.Len(t, invoices, 2)
	// Local invoices are fully shaped, items included.
	assert.Len(t, invoices[0].Items, 2)
	assert.Equal(t, "INV-00124", invoices[0].InvoiceNumber)
}

func TestInvoiceAdapter_Create(t *testing.T) {
	adapter := memory.NewInvoiceAdapter(memory.NewSeededStore())
	ctx := context.Background()

	invoice := &entities.Invoice{
		ID:            "inv-new",
		InvoiceNumber: "INV-00125",
		PatientID:     "p3",
		IssueDate:     "2024-11-01",
		DueDate:       "2024-11-16",
		Items: []entities.InvoiceItem{
			{ID: "i1", Description: "Consultation", Quantity: 1, UnitPrice: 80},
		},
		Subtotal: 80,
		Total:    80,
		Status:   entities.InvoiceStatusUnpaid,
	}

	require.NoError(t, adapter.Create(ctx, invoice))

	invoices, err := adapter.List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 3)

	// New invoices go to the front of the list.
	assert.Equal(t, "inv-new", invoices[0].ID)
	assert.Len(t, invoices[0].Items, 1)
}
