package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

// InvoiceAdapter implements the InvoiceRepository interface
type InvoiceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewInvoiceAdapter creates a new invoice adapter
func NewInvoiceAdapter(client *postgres.Client) repositories.InvoiceRepository {
	return &InvoiceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves all invoice headers. Line items are not joined on this
// path; every invoice returned here carries empty Items. Only invoices
// constructed in-session carry their items.
func (a *InvoiceAdapter) List(ctx context.Context) ([]*entities.Invoice, error) {
	query, args, err := a.db.Select(
		"id", "invoice_number", "patient_id", "issue_date", "due_date",
		"subtotal", "tax", "discount", "total", "status",
	).From("invoices").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build invoices query", err)
	}

	rows, err := a.client.QueryContext(ctx, "invoices.list", query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list invoices", err)
	}
	defer rows.Close()

	invoices := []*entities.Invoice{}
	for rows.Next() {
		invoice := &entities.Invoice{Items: []entities.InvoiceItem{}}

		err := rows.Scan(
			&invoice.ID,
			&invoice.InvoiceNumber,
			&invoice.PatientID,
			&invoice.IssueDate,
			&invoice.DueDate,
			&invoice.Subtotal,
			&invoice.Tax,
			&invoice.Discount,
			&invoice.Total,
			&invoice.Status,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan invoice row", err)
		}

		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read invoice rows", err)
	}

	return invoices, nil
}

// Create stores a complete invoice as a two-step write: insert the
// header and obtain its generated key, then insert every line item with
// that key as a foreign reference. There is no transaction across the
// steps: when the item insert fails the header row stays persisted,
// an accepted partial-failure state.
func (a *InvoiceAdapter) Create(ctx context.Context, invoice *entities.Invoice) error {
	record := goqu.Record{
		"invoice_number": invoice.InvoiceNumber,
		"patient_id":     invoice.PatientID,
		"issue_date":     invoice.IssueDate,
		"due_date":       invoice.DueDate,
		"subtotal":       invoice.Subtotal,
		"tax":            invoice.Tax,
		"discount":       invoice.Discount,
		"total":          invoice.Total,
		"status":         invoice.Status,
	}

	query, args, err := a.db.Insert("invoices").Rows(record).
		Returning("id").
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build invoice insert", err)
	}

	var invoiceID string
	if err := a.client.QueryRowContext(ctx, "invoices.create_header", query, args...).Scan(&invoiceID); err != nil {
		return apperrors.NewInternalError("failed to create invoice", err)
	}

	if len(invoice.Items) == 0 {
		return nil
	}

	itemRecords := make([]interface{}, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		itemRecords = append(itemRecords, goqu.Record{
			"invoice_id":  invoiceID,
			"description": item.Description,
			"quantity":    item.Quantity,
			"unit_price":  item.UnitPrice,
		})
	}

	query, args, err = a.db.Insert("invoice_items").Rows(itemRecords...).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build invoice items insert", err)
	}

	if _, err := a.client.ExecContext(ctx, "invoices.create_items", query, args...); err != nil {
		return apperrors.NewInternalError("failed to create invoice items", err)
	}

	return nil
}
