package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apierrors "dashboard/internal/errors"
	"dashboard/internal/models"
	"dashboard/internal/tests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	recorder := httptest.NewRecorder()
	RespondWithError(recorder, http.StatusNotFound, []string{apierrors.ErrMetricNotFound})

	tests.AssertJSONResponse(t, recorder, http.StatusNotFound, models.Error{
		Status: http.StatusNotFound,
		Error:  []string{apierrors.ErrMetricNotFound},
	})
}

func TestParseDateRange(t *testing.T) {
	now := time.Date(2024, time.March, 31, 15, 4, 5, 0, time.UTC)

	t.Run("should default to the last N days through the end of today", func(t *testing.T) {
		dates, err := ParseDateRange("", "", 30, now, time.UTC)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), dates.From)
		assert.Equal(t, time.Date(2024, time.March, 31, 23, 59, 59, 999999000, time.UTC), dates.To)
		assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), dates.EndDate)
	})

	t.Run("should parse explicit dates in the reporting timezone", func(t *testing.T) {
		london, err := time.LoadLocation("Europe/London")
		require.NoError(t, err)

		dates, err := ParseDateRange("2024-07-01", "2024-07-02", 30, now, london)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.June, 30, 23, 0, 0, 0, time.UTC), dates.From.UTC())
		assert.True(t, dates.To.Before(time.Date(2024, time.July, 2, 23, 0, 0, 0, time.UTC)))
	})

	t.Run("should accept a single day", func(t *testing.T) {
		dates, err := ParseDateRange("2024-03-10", "2024-03-10", 30, now, time.UTC)
		require.NoError(t, err)
		assert.True(t, dates.From.Before(dates.To))
	})

	t.Run("should reject a start after the end", func(t *testing.T) {
		_, err := ParseDateRange("2024-03-10", "2024-03-09", 30, now, time.UTC)
		assert.ErrorIs(t, err, apierrors.ErrDateRange)
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		_, err := ParseDateRange("10/03/2024", "", 30, now, time.UTC)
		assert.ErrorIs(t, err, apierrors.ErrValidation)
	})
}

func TestParseHorizons(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected []int
		err      bool
	}{
		{name: "empty", raw: "", expected: []int{}},
		{name: "keeps selection order", raw: "120,60,420", expected: []int{120, 60, 420}},
		{name: "trims spaces", raw: " 60 , 180", expected: []int{60, 180}},
		{name: "all horizons", raw: "60,120,180,240,300,360,420", expected: models.AllowedForecastHorizons},
		{name: "unknown horizon", raw: "90", err: true},
		{name: "duplicate horizon", raw: "60,60", err: true},
		{name: "not a number", raw: "sixty", err: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			horizons, err := ParseHorizons(tc.raw)
			if tc.err {
				assert.ErrorIs(t, err, apierrors.ErrHorizon)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, horizons)
		})
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.5")

	assert.Equal(t, "10.0.0.5", GetClientIP(req, nil))
	assert.Equal(t, "203.0.113.7", GetClientIP(req, []string{"10.0.0.0/8"}))
	assert.Equal(t, "203.0.113.7", GetClientIP(req, []string{"10.0.0.5"}))
	assert.Equal(t, "10.0.0.5", GetClientIP(req, []string{"192.168.0.1"}))
}
