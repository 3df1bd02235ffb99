package handlers

import (
	"context"
	"errors"
	"net/http"

	apierrors "dashboard/internal/errors"
	"dashboard/internal/helpers"
	m "dashboard/internal/middlewares"
	"dashboard/internal/models"

	"go.uber.org/zap"
)

type GetOneWithQueryTargetFunc[Q any, R any] func(context.Context, *zap.Logger, Q) (R, error)

type GetOneTargetFunc[R any] func(context.Context, *zap.Logger) (R, error)

// GetOneWithQueryHandler serves fn with the query parameters stored by
// ValidateQuery.
func GetOneWithQueryHandler[Q any, R any](fn GetOneWithQueryTargetFunc[Q, R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := m.GetLogger(r.Context())

		queryParams, ok := r.Context().Value(models.QueryParamsKey{}).(Q)
		if !ok {
			logger.Error("Query parameters missing from context", zap.String("path", r.URL.Path))
			helpers.RespondWithError(w, http.StatusInternalServerError, []string{apierrors.ErrInternalServer})
			return
		}

		response, err := fn(r.Context(), logger, queryParams)
		if err != nil {
			HandleError(w, logger, err)
			return
		}

		helpers.RespondWithJSON(w, http.StatusOK, response)
	}
}

func GetOneHandler[R any](fn GetOneTargetFunc[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := m.GetLogger(r.Context())

		response, err := fn(r.Context(), logger)
		if err != nil {
			HandleError(w, logger, err)
			return
		}

		helpers.RespondWithJSON(w, http.StatusOK, response)
	}
}

// HandleError answers taxonomy errors with their status and code. Anything
// else is logged and answered with a 500.
func HandleError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code >= http.StatusInternalServerError {
			logger.Error("Request failed", zap.Error(err))
		} else {
			logger.Debug("Request rejected", zap.Error(err))
		}
		helpers.RespondWithError(w, apiErr.Code, []string{apiErr.Message})
		return
	}

	logger.Error("Unexpected error", zap.Error(err))
	helpers.RespondWithError(w, http.StatusInternalServerError, []string{apierrors.ErrInternalServer})
}
