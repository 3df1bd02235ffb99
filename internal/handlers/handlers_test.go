package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "dashboard/internal/errors"
	m "dashboard/internal/middlewares"
	"dashboard/internal/models"
	"dashboard/internal/tests"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type echoParams struct {
	Name string `mapstructure:"name" validate:"required"`
	Zone int    `mapstructure:"zone" validate:"gte=0"`
}

type echoResponse struct {
	Name string `json:"name"`
	Zone int    `json:"zone"`
}

func newRouter(fn GetOneWithQueryTargetFunc[echoParams, echoResponse]) chi.Router {
	r := chi.NewRouter()
	r.With(m.ValidateQuery[echoParams]).Get("/", GetOneWithQueryHandler(fn))
	return r
}

func echo(_ context.Context, _ *zap.Logger, params echoParams) (echoResponse, error) {
	return echoResponse(params), nil
}

func TestGetOneWithQueryHandler(t *testing.T) {
	t.Run("should pass decoded parameters to the target", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		newRouter(echo).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?name=mae&zone=3", nil))

		tests.AssertJSONResponse(t, recorder, http.StatusOK, echoResponse{Name: "mae", Zone: 3})
	})

	t.Run("should answer BAD_REQUEST on invalid parameters", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		newRouter(echo).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?zone=-1", nil))

		tests.AssertJSONResponse(t, recorder, http.StatusBadRequest, models.Error{
			Status: http.StatusBadRequest,
			Error:  []string{apierrors.ErrBadRequest},
		})
	})

	t.Run("should answer BAD_REQUEST on a non numeric integer", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		newRouter(echo).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?name=mae&zone=abc", nil))

		tests.AssertJSONResponse(t, recorder, http.StatusBadRequest, models.Error{
			Status: http.StatusBadRequest,
			Error:  []string{apierrors.ErrBadRequest},
		})
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "configuration", err: apierrors.ErrConfiguration, status: http.StatusServiceUnavailable, code: apierrors.ErrStoreNotConfigured},
		{name: "connection", err: apierrors.ErrConnection.Wrap(errors.New("dial tcp")), status: http.StatusBadGateway, code: apierrors.ErrStoreUnreachable},
		{name: "not found", err: apierrors.ErrMetricMissing, status: http.StatusNotFound, code: apierrors.ErrMetricNotFound},
		{name: "validation", err: apierrors.ErrHorizon, status: http.StatusBadRequest, code: apierrors.ErrInvalidHorizon},
		{name: "timeout", err: apierrors.ErrTimeout, status: http.StatusGatewayTimeout, code: apierrors.ErrRequestTimeout},
		{name: "canceled", err: apierrors.ErrCanceled.Wrap(context.Canceled), status: apierrors.StatusClientClosedRequest, code: apierrors.ErrRequestCanceled},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: apierrors.ErrInternalServer},
	}

	for _, tc := range errorCases {
		t.Run("should map "+tc.name+" errors", func(t *testing.T) {
			failing := func(context.Context, *zap.Logger, echoParams) (echoResponse, error) {
				return echoResponse{}, tc.err
			}

			recorder := httptest.NewRecorder()
			newRouter(failing).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?name=mae", nil))

			tests.AssertJSONResponse(t, recorder, tc.status, models.Error{Status: tc.status, Error: []string{tc.code}})
		})
	}

	t.Run("should fail when the query middleware is missing", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		GetOneWithQueryHandler(echo).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?name=mae", nil))

		tests.AssertJSONResponse(t, recorder, http.StatusInternalServerError, models.Error{
			Status: http.StatusInternalServerError,
			Error:  []string{apierrors.ErrInternalServer},
		})
	})
}

func TestGetOneHandler(t *testing.T) {
	recorder := httptest.NewRecorder()
	handler := GetOneHandler(func(context.Context, *zap.Logger) (echoResponse, error) {
		return echoResponse{Name: "ok"}, nil
	})
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	tests.AssertJSONResponse(t, recorder, http.StatusOK, echoResponse{Name: "ok"})
}
