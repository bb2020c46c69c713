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

func TestInvoiceAdapter_List(t *testing.T) {
	t.Run("returns headers with empty items", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewInvoiceAdapter(client)

		mock.ExpectQuery(`SELECT .* FROM "invoices"`).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "invoice_number", "patient_id", "issue_date", "due_date",
				"subtotal", "tax", "discount", "total", "status",
			}).AddRow("inv1", "INV-00124", "p2", "2024-10-15", "2024-10-30",
				250.0, 0.0, 0.0, 250.0, "Paid"))

		invoices, err := adapter.List(context.Background())

		require.NoError(t, err)
		require.Len(t, invoices, 1)
		assert.Equal(t, "INV-00124", invoices[0].InvoiceNumber)
		assert.Equal(t, "2024-10-15", invoices[0].IssueDate)
		assert.Equal(t, 250.0, invoices[0].Total)
		assert.Equal(t, entities.InvoiceStatusPaid, invoices[0].Status)

		// Line items are not joined on this path.
		assert.Empty(t, invoices[0].Items)
	})
}

func TestInvoiceAdapter_Create(t *testing.T) {
	invoice := func() *entities.Invoice {
		return &entities.Invoice{
			InvoiceNumber: "INV-00125",
			PatientID:     "p1",
			IssueDate:     "2024-11-01",
			DueDate:       "2024-11-16",
			Items: []entities.InvoiceItem{
				{ID: "item1", Description: "Dental X-Ray", Quantity: 2, UnitPrice: 50},
				{ID: "item2", Description: "Standard Cleaning", Quantity: 1, UnitPrice: 150},
			},
			Subtotal: 250,
			Tax:      0,
			Discount: 0,
			Total:    250,
			Status:   entities.InvoiceStatusUnpaid,
		}
	}

	t.Run("writes header then items", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewInvoiceAdapter(client)

		mock.ExpectQuery(`INSERT INTO "invoices" .* RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("inv-key-1"))
		mock.ExpectExec(`INSERT INTO "invoice_items"`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := adapter.Create(context.Background(), invoice())

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed header insert stops before any item insert", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewInvoiceAdapter(client)

		mock.ExpectQuery(`INSERT INTO "invoices"`).
			WillReturnError(errors.New("numeric field overflow"))

		err := adapter.Create(context.Background(), invoice())

		require.Error(t, err)
		// No invoice_items statement was ever issued.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed item insert leaves the header persisted", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewInvoiceAdapter(client)

		mock.ExpectQuery(`INSERT INTO "invoices" .* RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("inv-key-2"))
		mock.ExpectExec(`INSERT INTO "invoice_items"`).
			WillReturnError(errors.New("value too long for type"))

		err := adapter.Create(context.Background(), invoice())

		require.Error(t, err)
		// The header insert completed and is not rolled back; the write
		// is not transactional across the two steps.
		assert.NoError(t, mock.ExpectationsWereMet())

		mock.ExpectQuery(`SELECT .* FROM "invoices"`).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "invoice_number", "patient_id", "issue_date", "due_date",
				"subtotal", "tax", "discount", "total", "status",
			}).AddRow("inv-key-2", "INV-00125", "p1", "2024-11-01", "2024-11-16",
				250.0, 0.0, 0.0, 250.0, "Unpaid"))

		invoices, err := adapter.List(context.Background())
		require.NoError(t, err)
		require.Len(t, invoices, 1)
		assert.Equal(t, "inv-key-2", invoices[0].ID)
	})

	t.Run("header without items skips the item step", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewInvoiceAdapter(client)

		mock.ExpectQuery(`INSERT INTO "invoices" .* RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("inv-key-3"))

		inv := invoice()
		inv.Items = nil
		err := adapter.Create(context.Background(), inv)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
