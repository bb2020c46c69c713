package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/dentalflow/clinic-backend/internal/infrastructure/observability"
	"github.com/dentalflow/clinic-backend/pkg/config"
	"github.com/dentalflow/clinic-backend/pkg/retry"
)

// Client represents a PostgreSQL database client
type Client struct {
	db      *sql.DB
	metrics *observability.Metrics
}

// NewClient creates a new PostgreSQL client. The initial connectivity
// check retries with exponential backoff; once the process is up,
// individual queries are never retried.
func NewClient(cfg *config.RemoteStoreConfig) (*Client, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	retryConfig := retry.DefaultConfig()
	err = retry.DoWithLog(
		context.Background(),
		retryConfig,
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return db.PingContext(ctx)
		},
		func(attempt int, err error, nextDelay time.Duration) {
			log.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", nextDelay).
				Msg("remote store connection attempt failed")
		},
	)

	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to remote store after retries: %w", err)
	}

	return &Client{db: db}, nil
}

// NewClientFromDB wraps an existing connection. Used by adapter tests.
func NewClientFromDB(db *sql.DB) *Client {
	return &Client{db: db}
}

// SetMetrics enables per-operation duration recording. Without it the
// instrumented methods just delegate.
func (c *Client) SetMetrics(metrics *observability.Metrics) {
	c.metrics = metrics
}

// DB returns the underlying database connection
func (c *Client) DB() *sql.DB {
	return c.db
}

// QueryContext runs a row-returning query and records its duration
// under the given operation label
func (c *Client) QueryContext(ctx context.Context, operation, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := c.db.QueryContext(ctx, query, args...)
	observability.RecordStoreOpMetric(ctx, c.metrics, operation, time.Since(start))
	return rows, err
}

// QueryRowContext runs a single-row query and records its duration.
// Errors surface at Scan time, so only the round trip is measured here.
func (c *Client) QueryRowContext(ctx context.Context, operation, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := c.db.QueryRowContext(ctx, query, args...)
	observability.RecordStoreOpMetric(ctx, c.metrics, operation, time.Since(start))
	return row
}

// ExecContext runs a statement and records its duration
func (c *Client) ExecContext(ctx context.Context, operation, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := c.db.ExecContext(ctx, query, args...)
	observability.RecordStoreOpMetric(ctx, c.metrics, operation, time.Since(start))
	return result, err
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping verifies the connection to the database
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
