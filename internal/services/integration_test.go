package services

import (
	"embed"
	"net/http"
	"testing"
	"time"

	"dashboard/internal/database"
	"dashboard/internal/models"
	"dashboard/internal/tests"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

//go:embed testdata/migrations/*.sql
var migrations embed.FS

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := t.Context()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("dashboard"),
		postgres.WithUsername("dashboard"),
		postgres.WithPassword("dashboard"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.InitDB(dsn, models.DatabaseConfiguration{
		MaxOpenConns:           4,
		MaxIdleConns:           1,
		ConnMaxLifetimeMinutes: 5,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	goose.SetBaseFS(migrations)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(sqlDB, "testdata/migrations"))

	return db
}

func TestPostgresIntegration(t *testing.T) {
	db := startPostgres(t)

	t.Run("metrics page", func(t *testing.T) {
		service := MetricsService{DB: db, Location: time.UTC, Now: frozenClock}

		recorder := serve(t, "/metrics", service.Routes(),
			"/metrics/dashboard?start=2024-01-01&end=2024-01-05&horizons=60,120")

		require.Equal(t, http.StatusOK, recorder.Code)
		response := tests.DecodeJSON[models.MetricsDashboardResponse](t, recorder)

		require.Len(t, response.MAETable, 5)
		for i, row := range response.MAETable {
			assert.True(t, row.Date.Equal(day(i+1)))
		}
		assertDecimal(t, "3.33", response.RecentMAE.DayBeforeYesterday)
		assertDecimal(t, "4.44", response.RecentMAE.Yesterday)
		assertDecimal(t, "5.56", response.RecentMAE.Today)
		assertDecimal(t, "10", response.RecentRMSE.Today)
		assertDecimal(t, "", response.RecentRMSE.Yesterday)

		traces := response.Charts.MAEByHorizon.Traces
		require.Len(t, traces, 3)
		assert.Equal(t, "60-minute horizon", traces[1].Name)
		assert.Len(t, traces[1].X, 2)
		assert.Equal(t, "120-minute horizon", traces[2].Name)
		assert.Len(t, traces[2].X, 1)
	})

	t.Run("users page", func(t *testing.T) {
		service := UsersService{Stores: database.Stores{National: db}, Location: time.UTC, Now: frozenClock}

		recorder := serve(t, "/users", service.Routes(), "/users/dashboard?start=2024-01-01&end=2024-01-05")

		require.Equal(t, http.StatusOK, recorder.Code)
		response := tests.DecodeJSON[models.UsersDashboardResponse](t, recorder)

		require.Len(t, response.LastRequests, 2)
		assert.Equal(t, "late@example.com", response.LastRequests[0].UserEmail)
		assert.Equal(t, "early@example.com", response.LastRequests[1].UserEmail)
		assert.Equal(t, "late@example.com", response.SelectedEmail)
		require.Len(t, response.Requests, 3)
		assert.Equal(t, []models.DailyRequestCount{
			{Date: "2024-01-03", Count: 2},
			{Date: "2024-01-05", Count: 1},
		}, response.DailyCounts)
	})

	t.Run("unknown user", func(t *testing.T) {
		service := UsersService{Stores: database.Stores{National: db}, Location: time.UTC, Now: frozenClock}

		recorder := serve(t, "/users", service.Routes(), "/users/requests?email=nobody@example.com")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
