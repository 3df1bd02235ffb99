package services

import (
	"context"
	"time"

	"dashboard/internal/charts"
	"dashboard/internal/configuration"
	"dashboard/internal/database"
	apierrors "dashboard/internal/errors"
	"dashboard/internal/handlers"
	h "dashboard/internal/helpers"
	"dashboard/internal/metrics"
	m "dashboard/internal/middlewares"
	"dashboard/internal/models"
	"dashboard/internal/series"
	"dashboard/internal/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MetricsService serves the forecast metrics page from the store behind DB_URL.
type MetricsService struct {
	DB       *gorm.DB
	Location *time.Location
	Now      func() time.Time
}

func (s MetricsService) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(m.ValidateQuery[models.MetricsDashboardQueryParams]).
		Get("/dashboard", handlers.GetOneWithQueryHandler(s.GetDashboard))

	r.With(m.ValidateQuery[models.MetricValuesQueryParams]).
		Get("/values", handlers.GetOneWithQueryHandler(s.GetValues))

	return r
}

func (s MetricsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s MetricsService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}

func (s MetricsService) GetDashboard(
	ctx context.Context,
	logger *zap.Logger,
	queryParams models.MetricsDashboardQueryParams,
) (models.MetricsDashboardResponse, error) {
	response, err := s.getDashboard(ctx, logger, queryParams)
	metrics.ObserveRender("metrics", err)
	return response, err
}

func (s MetricsService) getDashboard(
	ctx context.Context,
	logger *zap.Logger,
	queryParams models.MetricsDashboardQueryParams,
) (models.MetricsDashboardResponse, error) {
	if s.DB == nil {
		return models.MetricsDashboardResponse{}, apierrors.ErrConfiguration
	}

	horizons, err := h.ParseHorizons(queryParams.Horizons)
	if err != nil {
		return models.MetricsDashboardResponse{}, err
	}

	now := s.now()
	dates, err := h.ParseDateRange(
		queryParams.Start,
		queryParams.End,
		configuration.MetricsDefaultDays,
		now,
		s.location(),
	)
	if err != nil {
		return models.MetricsDashboardResponse{}, err
	}

	nameMAE, nameRMSE := models.MetricNames(queryParams.Adjusted)

	var mae, rmse charts.Series
	horizonSeries := make([]charts.HorizonSeries, 0, len(horizons))

	err = database.WithSession(ctx, s.DB, func(session *gorm.DB) error {
		query := models.MetricQuery{
			Name:   nameMAE,
			ZoneID: queryParams.Zone,
			Start:  dates.From,
			End:    dates.To,
		}

		records, err := sql.GetMetricValues(session, query)
		if err != nil {
			return err
		}
		mae.X, mae.Y = series.ToXY(records)

		query.Name = nameRMSE
		records, err = sql.GetMetricValues(session, query)
		if err != nil {
			return err
		}
		rmse.X, rmse.Y = series.ToXY(records)

		query.Name = nameMAE
		for _, horizon := range horizons {
			query.ForecastHorizonMinutes = &horizon
			records, err = sql.GetMetricValues(session, query)
			if err != nil {
				return err
			}
			x, y := series.ToXY(records)
			horizonSeries = append(horizonSeries, charts.HorizonSeries{Horizon: horizon, X: x, Y: y})
		}

		return nil
	})
	if err != nil {
		return models.MetricsDashboardResponse{}, err
	}

	logger.Debug("Rendered metrics page",
		zap.Int("mae_points", len(mae.X)),
		zap.Int("rmse_points", len(rmse.X)),
		zap.Ints("horizons", horizons),
	)

	return models.MetricsDashboardResponse{
		Metrics:      models.MetricNamesResponse{MAE: nameMAE, RMSE: nameRMSE},
		Start:        dates.StartDate.Format(h.DateLayout),
		End:          dates.EndDate.Format(h.DateLayout),
		Horizons:     horizons,
		RecentLabels: series.RecentDayLabels(now, s.location()),
		RecentMAE:    series.LastThree(mae.Y),
		RecentRMSE:   series.LastThree(rmse.Y),
		Charts: models.MetricsCharts{
			MAEBar:            charts.MAEBar(mae.X, mae.Y),
			MAEByHorizon:      charts.MAEByHorizon(mae, horizonSeries),
			MAEHorizonScatter: charts.MAEHorizonScatter(horizonSeries),
			MAEvsRMSE:         charts.MAEvsRMSE(mae, rmse),
		},
		MAETable:  series.ToTable(mae.X, mae.Y),
		RMSETable: series.ToTable(rmse.X, rmse.Y),
	}, nil
}

// GetValues exposes a single metric query with its shaped series.
func (s MetricsService) GetValues(
	ctx context.Context,
	_ *zap.Logger,
	queryParams models.MetricValuesQueryParams,
) (models.MetricValuesResponse, error) {
	if s.DB == nil {
		return models.MetricValuesResponse{}, apierrors.ErrConfiguration
	}

	dates, err := h.ParseDateRange(
		queryParams.Start,
		queryParams.End,
		configuration.MetricsDefaultDays,
		s.now(),
		s.location(),
	)
	if err != nil {
		return models.MetricValuesResponse{}, err
	}

	var records []models.MetricRecord
	err = database.WithSession(ctx, s.DB, func(session *gorm.DB) error {
		records, err = sql.GetMetricValues(session, models.MetricQuery{
			Name:                   queryParams.Name,
			ZoneID:                 queryParams.Zone,
			Start:                  dates.From,
			End:                    dates.To,
			ForecastHorizonMinutes: queryParams.Horizon,
		})
		return err
	})
	if err != nil {
		return models.MetricValuesResponse{}, err
	}

	x, y := series.ToXY(records)
	values := make([]string, len(y))
	for i, v := range y {
		values[i] = v.StringFixed(series.ValuePlaces)
	}

	return models.MetricValuesResponse{Records: records, X: x, Y: values}, nil
}
