package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	m "dashboard/internal/middlewares"

	"github.com/go-chi/chi/v5"
)

var fixedNow = time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)

func frozenClock() time.Time {
	return fixedNow
}

func serve(t *testing.T, mount string, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Use(m.Logger)
	r.Mount(mount, handler)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}
