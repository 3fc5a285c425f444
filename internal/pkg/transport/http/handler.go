package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/exception"
)

var ErrMalformedRequest = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "malformed request body",
}

// MakeHandlerFunc serves a go-kit endpoint, encoding failures with ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	decoder kithttp.DecodeRequestFunc,
	encoder kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, decoder, encoder,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest binds a JSON body into a new T and returns *T.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, ErrMalformedRequest.WithCause(err)
	}

	return req, nil
}

func timetableQuery(r *http.Request) dto.TimetableRequest {
	query := r.URL.Query()

	return dto.TimetableRequest{
		Date: strings.TrimSpace(query.Get("date")),
		Hub:  strings.ToUpper(strings.TrimSpace(query.Get("hub"))),
	}
}

// DecodeTimetableQuery reads ?date=&hub= into a validated *dto.TimetableRequest.
func DecodeTimetableQuery(_ context.Context, r *http.Request) (interface{}, error) {
	req := timetableQuery(r)

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("error validate request: %w", err)
	}

	return &req, nil
}

// DecodeAircraftQuery reads the {aircraftID} path parameter on top of DecodeTimetableQuery.
func DecodeAircraftQuery(_ context.Context, r *http.Request) (interface{}, error) {
	req := dto.AircraftTimetableRequest{TimetableRequest: timetableQuery(r)}

	param := chi.URLParam(r, "aircraftID")
	if param != "" {
		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			return nil, exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("aircraft_id must be a number, got %q", param),
			}
		}
		req.AircraftID = id
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("error validate request: %w", err)
	}

	return &req, nil
}
