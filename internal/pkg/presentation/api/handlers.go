package api

import (
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ridelog/strava-connector/internal/pkg/application/explorer"
)

// NewSearchRidesHandler handles GET requests for rides matching the query
func NewSearchRidesHandler(app explorer.Explorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "search-rides")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		params, err := parsePageParams(r.URL.Query())
		if err != nil {
			mapToProblemReport(w, err, traceID(ctx))
			return
		}

		results, err := app.SearchRides(ctx, params.offset, params.count, params.restrictions...)
		if err != nil {
			logging.GetFromContext(ctx).Error("ride search failed", "err", err.Error())
			mapToProblemReport(w, err, traceID(ctx))
			return
		}

		writeJSON(ctx, w, results)
	}
}

func NewRetrieveRideHandler(app explorer.Explorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		id, err := idParam(r)
		if err != nil {
			mapToProblemReport(w, err, traceID(r.Context()))
			return
		}

		ctx, span := tracer.Start(r.Context(), "retrieve-ride", trace.WithAttributes(attribute.Int64(TraceAttributeRecordID, id)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		ride, err := app.Ride(ctx, id)
		if err != nil {
			logging.GetFromContext(ctx).Warn("failed to retrieve ride", "id", id, "err", err.Error())
			mapToProblemReport(w, err, traceID(ctx))
			return
		}

		writeJSON(ctx, w, ride)
	}
}

func NewRetrieveRideEffortsHandler(app explorer.Explorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		id, err := idParam(r)
		if err != nil {
			mapToProblemReport(w, err, traceID(r.Context()))
			return
		}

		ctx, span := tracer.Start(r.Context(), "retrieve-ride-efforts", trace.WithAttributes(attribute.Int64(TraceAttributeRecordID, id)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		efforts, err := app.RideEfforts(ctx, id)
		if err != nil {
			logging.GetFromContext(ctx).Warn("failed to retrieve ride efforts", "id", id, "err", err.Error())
			mapToProblemReport(w, err, traceID(ctx))
			return
		}

		writeJSON(ctx, w, efforts)
	}
}

func NewRetrieveSegmentHandler(app explorer.Explorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		id, err := idParam(r)
		if err != nil {
			mapToProblemReport(w, err, traceID(r.Context()))
			return
		}

		ctx, span := tracer.Start(r.Context(), "retrieve-segment", trace.WithAttributes(attribute.Int64(TraceAttributeRecordID, id)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		segment, err := app.Segment(ctx, id)
		if err != nil {
			logging.GetFromContext(ctx).Warn("failed to retrieve segment", "id", id, "err", err.Error())
			mapToProblemReport(w, err, traceID(ctx))
			return
		}

		writeJSON(ctx, w, segment)
	}
}

// NewQuerySegmentEffortsHandler handles GET requests for the efforts on a
// segment, accepting the same restrictions as the ride search plus best
func NewQuerySegmentEffortsHandler(app explorer.Explorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		id, err := idParam(r)
		if err != nil {
			mapToProblemReport(w, err, traceID(r.Context()))
			return
		}

		ctx, span := tracer.Start(r.Context(), "query-segment-efforts", trace.WithAttributes(attribute.Int64(TraceAttributeRecordID, id)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		params, err := parsePageParams(r.URL.Query())
		if err != nil {
			mapToProblemReport(w, err, traceID(ctx))
			return
		}

		efforts, err := app.SegmentEfforts(ctx, id, params.offset, params.count, params.restrictions...)
		if err != nil {
			logging.GetFromContext(ctx).Warn("failed to query segment efforts", "id", id, "err", err.Error())
			mapToProblemReport(w, err, traceID(ctx))
			return
		}

		writeJSON(ctx, w, efforts)
	}
}

func NewRetrieveEffortHandler(app explorer.Explorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		id, err := idParam(r)
		if err != nil {
			mapToProblemReport(w, err, traceID(r.Context()))
			return
		}

		ctx, span := tracer.Start(r.Context(), "retrieve-effort", trace.WithAttributes(attribute.Int64(TraceAttributeRecordID, id)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		effort, err := app.Effort(ctx, id)
		if err != nil {
			logging.GetFromContext(ctx).Warn("failed to retrieve effort", "id", id, "err", err.Error())
			mapToProblemReport(w, err, traceID(ctx))
			return
		}

		writeJSON(ctx, w, effort)
	}
}

func NewRetrieveEffortStreamHandler(app explorer.Explorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		id, err := idParam(r)
		if err != nil {
			mapToProblemReport(w, err, traceID(r.Context()))
			return
		}

		ctx, span := tracer.Start(r.Context(), "retrieve-effort-stream", trace.WithAttributes(attribute.Int64(TraceAttributeRecordID, id)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		stream, err := app.EffortStream(ctx, id)
		if err != nil {
			logging.GetFromContext(ctx).Warn("failed to retrieve effort stream", "id", id, "err", err.Error())
			mapToProblemReport(w, err, traceID(ctx))
			return
		}

		writeJSON(ctx, w, stream)
	}
}
