package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentalflow/clinic-backend/internal/application/services"
	"github.com/dentalflow/clinic-backend/internal/domain/entities"
)

// InvoiceService defines the interface for billing operations
type InvoiceService interface {
	List(ctx context.Context) ([]*entities.Invoice, error)
	BuildInvoice(patientID string, items []entities.InvoiceItem, discount float64) (*entities.Invoice, error)
	Create(ctx context.Context, invoice *entities.Invoice) (*entities.Invoice, error)
	Overview(ctx context.Context) (*services.BillingOverview, error)
}

// CreateInvoiceRequest is the payload for POST /api/invoices
type CreateInvoiceRequest struct {
	PatientID string                 `json:"patientId"`
	Items     []entities.InvoiceItem `json:"items"`
	Discount  float64                `json:"discount"`
}

// InvoiceHandler handles billing requests
type InvoiceHandler struct {
	service InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
	}
}

// ListInvoices handles GET /api/invoices
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, invoices)
}

// CreateInvoice handles POST /api/invoices
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	invoice, err := h.service.BuildInvoice(req.PatientID, req.Items, req.Discount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), invoice)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// GetBillingOverview handles GET /api/billing/overview
func (h *InvoiceHandler) GetBillingOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, overview)
}
