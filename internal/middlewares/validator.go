package middlewares

import (
	"context"
	"net/http"
	"sync"

	apierrors "dashboard/internal/errors"
	"dashboard/internal/helpers"
	"dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"go.uber.org/zap"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// InitValidator builds the shared validator. Calling it more than once is a no-op.
func InitValidator() {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
}

// DecodeQuery decodes the first value of every query parameter into T and
// validates the result.
func DecodeQuery[T any](r *http.Request) (T, error) {
	InitValidator()

	var params T
	values := make(map[string]string)
	for key, v := range r.URL.Query() {
		if len(v) > 0 && v[0] != "" {
			values[key] = v[0]
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &params,
	})
	if err != nil {
		return params, err
	}
	if err = decoder.Decode(values); err != nil {
		return params, apierrors.ErrValidation.Wrap(err)
	}

	if err = validate.Struct(params); err != nil {
		return params, apierrors.ErrValidation.Wrap(err)
	}

	return params, nil
}

// ValidateQuery decodes and validates the query string into T and stores it
// in the request context for the handler.
//
//	r.With(m.ValidateQuery[models.UsersDashboardQueryParams]).
//	    Get("/dashboard", handler)
func ValidateQuery[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, err := DecodeQuery[T](r)
		if err != nil {
			zap.L().Debug("Invalid query parameters", zap.String("path", r.URL.Path), zap.Error(err))
			helpers.RespondWithError(w, http.StatusBadRequest, []string{apierrors.ErrBadRequest})
			return
		}

		ctx := context.WithValue(r.Context(), models.QueryParamsKey{}, params)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
