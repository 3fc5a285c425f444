package providerutils

import (
	"net/http"

	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/exception"
)

var ErrProviderInternalError = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "schedule provider internal error or temporary unavailable",
}

var ErrRetryExceeded = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "retry exceeded",
}

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "schedule provider rate limit exceeded",
}

var ErrScheduleNotFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "no schedule published for the requested week",
}

var ErrMalformedSchedule = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "schedule provider returned a malformed response",
}
