package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard/internal/cache"
	apierrors "dashboard/internal/errors"
	"dashboard/internal/models"
	"dashboard/internal/tests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCache struct {
	retryAfter int
	err        error
	calls      []string
	ctx        context.Context
}

var _ cache.ICache = (*mockCache)(nil)

func (c *mockCache) GetRateLimit(ctx context.Context, identifier string, _ int) (int, error) {
	c.ctx = ctx
	c.calls = append(c.calls, identifier)
	return c.retryAfter, c.err
}

func (c *mockCache) Close() error { return nil }

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("should pass through without a cache", func(t *testing.T) {
		var called bool
		recorder := httptest.NewRecorder()
		RateLimit(nil, 10, nil)(okHandler(&called)).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("should reject when the limit is reached", func(t *testing.T) {
		c := &mockCache{retryAfter: 42}
		var called bool

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:5555"
		recorder := httptest.NewRecorder()
		RateLimit(c, 10, nil)(okHandler(&called)).ServeHTTP(recorder, req)

		assert.False(t, called)
		assert.Equal(t, "42", recorder.Header().Get("Retry-After"))
		assert.Equal(t, []string{"192.0.2.1"}, c.calls)
		tests.AssertJSONResponse(t, recorder, http.StatusTooManyRequests, models.Error{
			Status: http.StatusTooManyRequests,
			Error:  []string{apierrors.ErrTooManyRequests},
		})
	})

	t.Run("should serve the request when the cache fails", func(t *testing.T) {
		c := &mockCache{err: errors.New("connection refused")}
		var called bool

		recorder := httptest.NewRecorder()
		RateLimit(c, 10, nil)(okHandler(&called)).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("should count on the request context", func(t *testing.T) {
		c := &mockCache{}
		var called bool

		ctx := context.WithValue(context.Background(), models.RequestIDKey{}, "req-1")
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		RateLimit(c, 10, nil)(okHandler(&called)).ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, called)
		require.NotNil(t, c.ctx)
		assert.Equal(t, "req-1", c.ctx.Value(models.RequestIDKey{}))
	})

	t.Run("should be disabled with a zero limit", func(t *testing.T) {
		c := &mockCache{retryAfter: 10}
		var called bool

		RateLimit(c, 0, nil)(okHandler(&called)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, called)
		assert.Empty(t, c.calls)
	})
}

func TestLogger(t *testing.T) {
	t.Run("should attach a request id and logger", func(t *testing.T) {
		var requestID string
		var logger *zap.Logger

		handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, _ = r.Context().Value(models.RequestIDKey{}).(string)
			logger = GetLogger(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, requestID)
		assert.NotNil(t, logger)
		assert.Equal(t, requestID, recorder.Header().Get(RequestIDHeader))
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("should keep an incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc")

		recorder := httptest.NewRecorder()
		Logger(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(recorder, req)

		assert.Equal(t, "abc", recorder.Header().Get(RequestIDHeader))
	})
}

func TestDecodeQuery(t *testing.T) {
	t.Run("should decode optional pointers and booleans", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?name=Daily+Latest+MAE&horizon=60&zone=0", nil)

		params, err := DecodeQuery[models.MetricValuesQueryParams](req)
		require.NoError(t, err)
		assert.Equal(t, "Daily Latest MAE", params.Name)
		require.NotNil(t, params.Horizon)
		assert.Equal(t, 60, *params.Horizon)
	})

	t.Run("should leave absent pointers nil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?name=x", nil)

		params, err := DecodeQuery[models.MetricValuesQueryParams](req)
		require.NoError(t, err)
		assert.Nil(t, params.Horizon)
	})

	t.Run("should decode the adjuster toggle", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?adjusted=true&horizons=60,120", nil)

		params, err := DecodeQuery[models.MetricsDashboardQueryParams](req)
		require.NoError(t, err)
		assert.True(t, params.Adjusted)
		assert.Equal(t, "60,120", params.Horizons)
	})

	t.Run("should reject malformed dates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?start=01-01-2024", nil)

		_, err := DecodeQuery[models.MetricsDashboardQueryParams](req)
		assert.ErrorIs(t, err, apierrors.ErrValidation)
	})
}
