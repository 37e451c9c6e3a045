package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ridelog/strava-connector/internal/pkg/application/explorer"
	stravaerrors "github.com/ridelog/strava-connector/pkg/strava/errors"
)

const (
	TraceAttributeRecordID string = "record-id"
	TraceAttributeFailure  string = "failure"
)

var tracer = otel.Tracer("strava-connector/api")

func RegisterHandlers(ctx context.Context, r chi.Router, app explorer.Explorer) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Logger(logging.GetFromContext(ctx)))

		r.Route("/rides", func(r chi.Router) {
			r.Get("/", NewSearchRidesHandler(app))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", NewRetrieveRideHandler(app))
				r.Get("/efforts", NewRetrieveRideEffortsHandler(app))
			})
		})

		r.Route("/segments/{id}", func(r chi.Router) {
			r.Get("/", NewRetrieveSegmentHandler(app))
			r.Get("/efforts", NewQuerySegmentEffortsHandler(app))
		})

		r.Route("/efforts/{id}", func(r chi.Router) {
			r.Get("/", NewRetrieveEffortHandler(app))
			r.Get("/stream", NewRetrieveEffortStreamHandler(app))
		})
	})
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// traceID returns the id of the active trace, or a random id that can be used
// to correlate a problem report with the log when no trace is recorded.
func traceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return uuid.NewString()
}

func mapToProblemReport(w http.ResponseWriter, err error, traceID string) {
	switch {
	case errors.Is(err, stravaerrors.ErrBadRequest):
		stravaerrors.ReportNewBadRequestData(w, err.Error(), traceID)
	case errors.Is(err, stravaerrors.ErrNotFound):
		stravaerrors.ReportNotFoundError(w, err.Error(), traceID)
	case errors.Is(err, stravaerrors.ErrAPICallFailed):
		stravaerrors.ReportUpstreamUnavailable(w, "upstream service did not respond", traceID)
	default:
		stravaerrors.ReportNewInternalError(w, err.Error(), traceID)
	}
}

func addLabelIfError(err error, labeler *otelhttp.Labeler) {
	if err != nil && labeler != nil {
		labeler.Add(attribute.Bool(TraceAttributeFailure, true))
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to marshal response", "err", err.Error())
		stravaerrors.ReportNewInternalError(w, "failed to marshal response", traceID(ctx))
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
