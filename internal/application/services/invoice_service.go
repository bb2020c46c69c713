package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

const (
	invoiceDateLayout = "2006-01-02"
	invoiceDueDays    = 14
)

// BillingOverview bundles the data the billing dashboard needs in one
// round trip.
type BillingOverview struct {
	Invoices []*entities.Invoice `json:"invoices"`
	Patients []*entities.Patient `json:"patients"`
}

// InvoiceService handles billing logic
type InvoiceService struct {
	invoices repositories.InvoiceRepository
	patients repositories.PatientRepository
	now      func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoices repositories.InvoiceRepository, patients repositories.PatientRepository) *InvoiceService {
	return &InvoiceService{
		invoices: invoices,
		patients: patients,
		now:      time.Now,
	}
}

// List returns all invoices. Line items are not loaded here; callers
// that need them use the record returned by Create.
func (s *InvoiceService) List(ctx context.Context) ([]*entities.Invoice, error) {
	return s.invoices.List(ctx)
}

// BuildInvoice assembles a complete invoice from the caller's draft:
// it assigns ids, an invoice number, issue and due dates, and computes
// the totals from the line items.
func (s *InvoiceService) BuildInvoice(patientID string, items []entities.InvoiceItem, discount float64) (*entities.Invoice, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, apperrors.NewValidationError("patient id is required")
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("invoice needs at least one line item")
	}

	var subtotal float64
	built := make([]entities.InvoiceItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			return nil, apperrors.NewValidationError("line item description is required")
		}
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidationError("line item quantity must be positive")
		}
		if item.UnitPrice < 0 {
			return nil, apperrors.NewValidationError("line item unit price cannot be negative")
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		subtotal += float64(item.Quantity) * item.UnitPrice
		built = append(built, item)
	}

	// Tax is not levied yet; the field stays in the totals so the
	// arithmetic does not change when it is.
	tax := 0.0
	total := subtotal - discount + tax

	issuedAt := s.now()
	return &entities.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: fmt.Sprintf("INV-%05d", rand.Intn(100000)),
		PatientID:     patientID,
		IssueDate:     issuedAt.Format(invoiceDateLayout),
		DueDate:       issuedAt.AddDate(0, 0, invoiceDueDays).Format(invoiceDateLayout),
		Items:         built,
		Subtotal:      subtotal,
		Discount:      discount,
		Tax:           tax,
		Total:         total,
		Status:        entities.InvoiceStatusUnpaid,
	}, nil
}

// Create persists a built invoice
func (s *InvoiceService) Create(ctx context.Context, invoice *entities.Invoice) (*entities.Invoice, error) {
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Overview fetches invoices and patients concurrently. Either failure
// fails the whole call so the dashboard never renders half a picture.
func (s *InvoiceService) Overview(ctx context.Context) (*BillingOverview, error) {
	var (
		wg          sync.WaitGroup
		invoices    []*entities.Invoice
		patients    []*entities.Patient
		invoicesErr error
		patientsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		invoices, invoicesErr = s.invoices.List(ctx)
	}()
	go func() {
		defer wg.Done()
		patients, patientsErr = s.patients.List(ctx)
	}()
	wg.Wait()

	if invoicesErr != nil {
		return nil, invoicesErr
	}
	if patientsErr != nil {
		return nil, patientsErr
	}

	return &BillingOverview{Invoices: invoices, Patients: patients}, nil
}
