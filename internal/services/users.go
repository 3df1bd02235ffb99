package services

import (
	"context"
	"time"

	"dashboard/internal/activity"
	"dashboard/internal/charts"
	"dashboard/internal/configuration"
	"dashboard/internal/database"
	"dashboard/internal/handlers"
	h "dashboard/internal/helpers"
	"dashboard/internal/metrics"
	m "dashboard/internal/middlewares"
	"dashboard/internal/models"
	"dashboard/internal/series"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UsersService serves the API users page from the national or sites store.
type UsersService struct {
	Stores   database.Stores
	Location *time.Location
	Now      func() time.Time
}

func (s UsersService) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(m.ValidateQuery[models.UsersDashboardQueryParams]).
		Get("/dashboard", handlers.GetOneWithQueryHandler(s.GetDashboard))

	r.With(m.ValidateQuery[models.LastRequestsQueryParams]).
		Get("/last-requests", handlers.GetOneWithQueryHandler(s.GetLastRequests))

	r.With(m.ValidateQuery[models.UserRequestsQueryParams]).
		Get("/requests", handlers.GetOneWithQueryHandler(s.GetRequests))

	return r
}

func (s UsersService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s UsersService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}

// withStore selects the requested store and runs fn against a store bound
// to one session of its pool.
func (s UsersService) withStore(
	ctx context.Context,
	requested string,
	fn func(store activity.IActivityStore) error,
) (string, error) {
	store, db, err := activity.Select(s.Stores, requested)
	if err != nil {
		return "", err
	}

	err = database.WithSession(ctx, db, func(session *gorm.DB) error {
		return fn(store.WithSession(session))
	})
	return store.Name(), err
}

func (s UsersService) GetDashboard(
	ctx context.Context,
	logger *zap.Logger,
	queryParams models.UsersDashboardQueryParams,
) (models.UsersDashboardResponse, error) {
	response, err := s.getDashboard(ctx, logger, queryParams)
	metrics.ObserveRender("users", err)
	return response, err
}

func (s UsersService) getDashboard(
	ctx context.Context,
	logger *zap.Logger,
	queryParams models.UsersDashboardQueryParams,
) (models.UsersDashboardResponse, error) {
	dates, err := h.ParseDateRange(
		queryParams.Start,
		queryParams.End,
		configuration.UsersDefaultDays,
		s.now(),
		s.location(),
	)
	if err != nil {
		return models.UsersDashboardResponse{}, err
	}

	var lastRequests []models.LastRequestRecord
	requests := []models.ApiRequestRecord{}
	selected := queryParams.Email

	name, err := s.withStore(ctx, queryParams.Store, func(store activity.IActivityStore) error {
		lastRequests, err = store.LastRequestPerUser(ctx)
		if err != nil {
			return err
		}

		if selected == "" {
			if len(lastRequests) == 0 {
				return nil
			}
			selected = lastRequests[0].UserEmail
		}

		requests, err = store.RequestsForUser(ctx, selected, dates.From, dates.To)
		return err
	})
	if err != nil {
		return models.UsersDashboardResponse{}, err
	}

	logger.Debug("Rendered users page",
		zap.String("store", name),
		zap.Int("users", len(lastRequests)),
		zap.Int("requests", len(requests)),
	)

	counts := series.DailyCounts(requests, s.location())

	return models.UsersDashboardResponse{
		Store:           name,
		AvailableStores: activity.Available(s.Stores),
		Start:           dates.StartDate.Format(h.DateLayout),
		End:             dates.EndDate.Format(h.DateLayout),
		LastRequests:    lastRequests,
		SelectedEmail:   selected,
		Requests:        series.RequestRows(requests),
		DailyCounts:     counts,
		Chart:           charts.APIRequests(selected, counts, dates.StartDate, dates.EndDate),
	}, nil
}

func (s UsersService) GetLastRequests(
	ctx context.Context,
	_ *zap.Logger,
	queryParams models.LastRequestsQueryParams,
) (models.LastRequestsResponse, error) {
	var lastRequests []models.LastRequestRecord

	name, err := s.withStore(ctx, queryParams.Store, func(store activity.IActivityStore) error {
		var err error
		lastRequests, err = store.LastRequestPerUser(ctx)
		return err
	})
	if err != nil {
		return models.LastRequestsResponse{}, err
	}

	return models.LastRequestsResponse{Store: name, LastRequests: lastRequests}, nil
}

func (s UsersService) GetRequests(
	ctx context.Context,
	_ *zap.Logger,
	queryParams models.UserRequestsQueryParams,
) (models.UserRequestsResponse, error) {
	dates, err := h.ParseDateRange(
		queryParams.Start,
		queryParams.End,
		configuration.UsersDefaultDays,
		s.now(),
		s.location(),
	)
	if err != nil {
		return models.UserRequestsResponse{}, err
	}

	var requests []models.ApiRequestRecord
	name, err := s.withStore(ctx, queryParams.Store, func(store activity.IActivityStore) error {
		requests, err = store.RequestsForUser(ctx, queryParams.Email, dates.From, dates.To)
		return err
	})
	if err != nil {
		return models.UserRequestsResponse{}, err
	}

	return models.UserRequestsResponse{
		Store:       name,
		Email:       queryParams.Email,
		Requests:    series.RequestRows(requests),
		DailyCounts: series.DailyCounts(requests, s.location()),
	}, nil
}
