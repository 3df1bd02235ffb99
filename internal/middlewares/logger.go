package middlewares

import (
	"context"
	"net/http"
	"time"

	"dashboard/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// Logger attaches a request id and a request-scoped logger to the context,
// then logs the request once it completes.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		logger := zap.L().With(zap.String("request_id", requestID))

		ctx := context.WithValue(r.Context(), models.RequestIDKey{}, requestID)
		ctx = context.WithValue(ctx, models.LoggerKey{}, logger)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		logger.Info("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// GetLogger returns the request-scoped logger, or the global one outside a request.
func GetLogger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(models.LoggerKey{}).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}
