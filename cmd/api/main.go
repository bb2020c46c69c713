package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dentalflow/clinic-backend/internal/adapters/datastore"
	"github.com/dentalflow/clinic-backend/internal/api/handlers"
	"github.com/dentalflow/clinic-backend/internal/api/routes"
	"github.com/dentalflow/clinic-backend/internal/application/services"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/observability"
	"github.com/dentalflow/clinic-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment, cfg.Logging.Level)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Select the data backend once for the process lifetime
	store, err := datastore.New(cfg, metrics)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize data store")
	}
	defer store.Close()
	if store.Remote {
		logger.Info().Msg("using remote data store")
	} else {
		logger.Info().Msg("remote store not configured, using local sample data")
	}

	// Services
	patientService := services.NewPatientService(store.Patients)
	appointmentService := services.NewAppointmentService(store.Appointments)
	invoiceService := services.NewInvoiceService(store.Invoices, store.Patients)
	accountService := services.NewAccountService(store.Identity)

	// Handlers
	patientHandler := handlers.NewPatientHandler(patientService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	accountHandler := handlers.NewAccountHandler(accountService)

	router := routes.NewRouter(
		patientHandler,
		appointmentHandler,
		invoiceHandler,
		accountHandler,
		metrics,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
}
