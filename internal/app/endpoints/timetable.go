package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
)

type TimetableService interface {
	GetWeeklyTimetable(ctx context.Context, req dto.TimetableRequest) (dto.TimetableResponse, error)
	GetAircraftTimetable(ctx context.Context, req dto.AircraftTimetableRequest) (dto.AircraftTimetable, error)
	LayoutIntervals(ctx context.Context, req dto.LayoutRequest) (dto.AircraftTimetable, error)
	ExportWeekPDF(ctx context.Context, req dto.TimetableRequest) (dto.PDFDocument, error)
}

type TimetableEndpoint struct {
	GetWeek     endpoint.Endpoint
	GetAircraft endpoint.Endpoint
	Layout      endpoint.Endpoint
	ExportPDF   endpoint.Endpoint
}

var errInvalidType = errors.New("invalid type")

func MakeTimetableEndpoint(service TimetableService) TimetableEndpoint {
	return TimetableEndpoint{
		GetWeek:     makeGetWeekEndpoint(service),
		GetAircraft: makeGetAircraftEndpoint(service),
		Layout:      makeLayoutEndpoint(service),
		ExportPDF:   makeExportPDFEndpoint(service),
	}
}

func makeGetWeekEndpoint(service TimetableService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TimetableRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		timetable, err := service.GetWeeklyTimetable(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("timetable service: %w", err)
		}

		return timetable, nil
	}
}

func makeGetAircraftEndpoint(service TimetableService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.AircraftTimetableRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		timetable, err := service.GetAircraftTimetable(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("timetable service: %w", err)
		}

		return timetable, nil
	}
}

func makeLayoutEndpoint(service TimetableService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LayoutRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		timetable, err := service.LayoutIntervals(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("timetable service: %w", err)
		}

		return timetable, nil
	}
}

func makeExportPDFEndpoint(service TimetableService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TimetableRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		doc, err := service.ExportWeekPDF(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("timetable service: %w", err)
		}

		return doc, nil
	}
}
