package routes

import (
	"net/http"

	"github.com/dentalflow/clinic-backend/internal/api/handlers"
	"github.com/dentalflow/clinic-backend/internal/api/middleware"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	patientHandler     *handlers.PatientHandler
	appointmentHandler *handlers.AppointmentHandler
	invoiceHandler     *handlers.InvoiceHandler
	accountHandler     *handlers.AccountHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
	invoiceHandler *handlers.InvoiceHandler,
	accountHandler *handlers.AccountHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		invoiceHandler:     invoiceHandler,
		accountHandler:     accountHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Patient endpoints
	r.mux.HandleFunc("GET /api/patients", r.patientHandler.ListPatients)
	r.mux.HandleFunc("POST /api/patients", r.patientHandler.CreatePatient)
	r.mux.HandleFunc("GET /api/patients/{id}", r.patientHandler.GetPatient)
	r.mux.HandleFunc("GET /api/patients/{id}/appointments", r.appointmentHandler.ListPatientAppointments)

	// Appointment endpoints
	r.mux.HandleFunc("GET /api/appointments", r.appointmentHandler.ListAppointments)
	r.mux.HandleFunc("POST /api/appointments", r.appointmentHandler.BookAppointment)

	// Billing endpoints
	r.mux.HandleFunc("GET /api/invoices", r.invoiceHandler.ListInvoices)
	r.mux.HandleFunc("POST /api/invoices", r.invoiceHandler.CreateInvoice)
	r.mux.HandleFunc("GET /api/billing/overview", r.invoiceHandler.GetBillingOverview)

	// Account endpoints
	r.mux.HandleFunc("GET /api/me", r.accountHandler.GetCurrentUser)
	r.mux.HandleFunc("POST /api/auth/signin", r.accountHandler.SignIn)
	r.mux.HandleFunc("POST /api/auth/signup", r.accountHandler.SignUp)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so every response carries its headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	handler = middleware.CORSMiddleware(handler)

	return handler
}
