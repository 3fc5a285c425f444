package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/config"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/fleet-timetable-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	_ *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/timetable", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/", httptransport.MakeHandlerFunc(
			endpts.TimetableEndpoint.GetWeek,
			httptransport.DecodeTimetableQuery,
			httptransport.ResponseWithBody,
		))

		router.Get("/aircraft/{aircraftID}", httptransport.MakeHandlerFunc(
			endpts.TimetableEndpoint.GetAircraft,
			httptransport.DecodeAircraftQuery,
			httptransport.ResponseWithBody,
		))

		router.Post("/layout", httptransport.MakeHandlerFunc(
			endpts.TimetableEndpoint.Layout,
			httptransport.DecodeRequest[dto.LayoutRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/pdf", httptransport.MakeHandlerFunc(
			endpts.TimetableEndpoint.ExportPDF,
			httptransport.DecodeTimetableQuery,
			httptransport.PDFResponse,
		))
	})

	return router
}
