package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/dentalflow/clinic-backend/internal/infrastructure/clients/postgres"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/observability"
)

func TestClient_RecordsStoreOpDuration(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(previous) })

	metrics, err := observability.InitMetrics()
	require.NoError(t, err)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := postgres.NewClientFromDB(db)
	client.SetMetrics(metrics)

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	rows, err := client.QueryContext(context.Background(), "patients.list", "SELECT 1")
	require.NoError(t, err)
	rows.Close()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var hist *metricdata.Histogram[float64]
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == "store.operation.duration" {
				if data, ok := m.Data.(metricdata.Histogram[float64]); ok {
					hist = &data
				}
			}
		}
	}
	require.NotNil(t, hist, "store operation histogram not collected")
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)

	operation, ok := hist.DataPoints[0].Attributes.Value("db.operation")
	require.True(t, ok)
	assert.Equal(t, "patients.list", operation.AsString())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_NoMetricsIsANoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := postgres.NewClientFromDB(db)

	mock.ExpectExec("INSERT INTO \"appointments\"").WillReturnResult(sqlmock.NewResult(1, 1))

	_, err = client.ExecContext(context.Background(), "appointments.create", `INSERT INTO "appointments" DEFAULT VALUES`)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
