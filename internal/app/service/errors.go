package service

import (
	"net/http"

	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/exception"
)

var ErrAircraftNotFound = exception.ApplicationError{
	Message:    "aircraft not found in the requested week",
	StatusCode: http.StatusNotFound,
}

var ErrScheduleUnavailable = exception.ApplicationError{
	Message:    "schedule service unavailable",
	StatusCode: http.StatusBadGateway,
}
