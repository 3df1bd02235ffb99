package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	c "dashboard/internal/cache"
	"dashboard/internal/configuration"
	"dashboard/internal/database"
	h "dashboard/internal/helpers"
	m "dashboard/internal/middlewares"
	"dashboard/internal/models"
	"dashboard/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// NewRouter wires the middlewares and mounts every service under the API prefix.
func NewRouter(
	config models.Configuration,
	stores database.Stores,
	cache c.ICache,
	location *time.Location,
) chi.Router {
	m.InitValidator()

	r := chi.NewRouter()

	r.Use(middleware.Timeout(time.Duration(config.App.RequestTimeoutSeconds) * time.Second))
	r.Use(m.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.App.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", m.RequestIDHeader},
		ExposedHeaders: []string{m.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		h.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route(configuration.APIPrefix, func(apiRouter chi.Router) {
		apiRouter.Use(m.RateLimit(cache, config.RateLimit.RequestsPerMinute, config.App.TrustedProxies))

		apiRouter.Mount("/metrics", services.MetricsService{
			DB:       stores.National,
			Location: location,
		}.Routes())

		apiRouter.Mount("/users", services.UsersService{
			Stores:   stores,
			Location: location,
		}.Routes())

		apiRouter.Mount("/stores", services.StoresService{
			Stores: stores,
		}.Routes())
	})

	return r
}

// StartHTTPServer serves the API until ctx is cancelled, then drains
// in-flight requests.
func StartHTTPServer(
	ctx context.Context,
	config models.Configuration,
	stores database.Stores,
	cache c.ICache,
	location *time.Location,
) {
	router := NewRouter(config, stores, cache, location)

	var handler http.Handler = router
	if config.Tracing.Enabled {
		handler = otelhttp.NewHandler(router, config.Tracing.ServiceName)
	}

	timeout := time.Duration(config.App.RequestTimeoutSeconds) * time.Second
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.App.Port),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("Failed to shut down the HTTP server", zap.Error(err))
		}
	}()

	zap.L().Info("HTTP server starting", zap.Int("port", config.App.Port))

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Failed to start the app", zap.Error(err))
	}
}
