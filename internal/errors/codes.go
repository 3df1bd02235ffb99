package apierrors

// HTTP 400 Bad Request.
const (
	ErrBadRequest       = "BAD_REQUEST"
	ErrInvalidDateRange = "INVALID_DATE_RANGE"
	ErrInvalidHorizon   = "INVALID_HORIZON"
	ErrInvalidStore     = "INVALID_STORE"
)

// HTTP 404 Not Found.
const (
	ErrMetricNotFound = "METRIC_NOT_FOUND"
	ErrUserNotFound   = "USER_NOT_FOUND"
)

// StatusClientClosedRequest marks renders abandoned by the client.
const StatusClientClosedRequest = 499

const (
	ErrRequestCanceled = "REQUEST_CANCELED"
)

// HTTP 429 Too Many Requests.
const (
	ErrTooManyRequests = "TOO_MANY_REQUESTS"
)

// HTTP 500 Internal Server Error.
const (
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

// HTTP 502 Bad Gateway.
const (
	ErrStoreUnreachable = "STORE_UNREACHABLE"
)

// HTTP 503 Service Unavailable.
const (
	ErrStoreNotConfigured = "STORE_NOT_CONFIGURED"
)

// HTTP 504 Gateway Timeout.
const (
	ErrRequestTimeout = "REQUEST_TIMEOUT"
)
