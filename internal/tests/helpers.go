package tests

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewMockDB returns a gorm handle backed by sqlmock using the postgres dialector.
// The connection is closed when the test ends.
func NewMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// AssertJSONResponse checks the status code and decodes the body into a value
// of the same type as expected before comparing.
func AssertJSONResponse[T any](t *testing.T, recorder *httptest.ResponseRecorder, status int, expected T) {
	t.Helper()

	assert.Equal(t, status, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var actual T
	err := json.Unmarshal(recorder.Body.Bytes(), &actual)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

// DecodeJSON decodes the recorder body into T.
func DecodeJSON[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var actual T
	err := json.Unmarshal(recorder.Body.Bytes(), &actual)
	require.NoError(t, err)
	return actual
}
