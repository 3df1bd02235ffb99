package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	apierrors "dashboard/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Classify maps driver-level connectivity failures to the ConnectionError
// taxonomy error, and a cancelled or expired request context to ErrCanceled
// or ErrTimeout. Errors that already carry an API code and all other errors
// are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return err
	}

	var connectErr *pgconn.ConnectError
	switch {
	case errors.Is(err, context.Canceled):
		return apierrors.ErrCanceled.Wrap(err)
	case errors.As(err, &connectErr):
		return apierrors.ErrConnection.Wrap(err)
	case errors.Is(err, context.DeadlineExceeded):
		return apierrors.ErrTimeout.Wrap(err)
	case isConnectionError(err):
		return apierrors.ErrConnection.Wrap(err)
	}

	return err
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
