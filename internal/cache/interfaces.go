package cache

import "context"

type ICache interface {
	// GetRateLimit counts one request for identifier and returns the
	// seconds to wait before retrying, or 0 when the request is allowed.
	GetRateLimit(ctx context.Context, identifier string, requestsPerMinute int) (int, error)

	Close() error
}
