// Package strava maps the rides, efforts and segments of the Strava v1 API onto
// typed records. Every lookup returns a nil record and a nil error when the
// service reports that the requested resource does not exist.
package strava

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ridelog/strava-connector/pkg/strava/client"
)

const (
	TraceAttributeRideID    string = "ride-id"
	TraceAttributeSegmentID string = "segment-id"
	TraceAttributeEffortID  string = "effort-id"
)

var tracer = otel.Tracer("strava-connector/strava")

type API struct {
	client client.Client
}

func New(c client.Client) *API {
	return &API{client: c}
}

func (a *API) RideByID(ctx context.Context, id int64) (ride *Ride, err error) {
	ctx, span := tracer.Start(ctx, "ride-by-id", trace.WithAttributes(attribute.Int64(TraceAttributeRideID, id)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, err := a.client.Call(ctx, fmt.Sprintf("rides/%d", id))
	if err != nil || response == nil {
		return nil, err
	}

	return a.newRide(response.Get("ride"))
}

// SearchRides returns up to count rides matching the restrictions, skipping the
// first offset matches.
func (a *API) SearchRides(ctx context.Context, offset, count int64, restrictions ...client.RequestDecoratorFunc) (results []RideSearchResult, err error) {
	ctx, span := tracer.Start(ctx, "search-rides")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return client.Collect(ctx, a.client,
		client.Listing{Path: "rides", Key: "rides"},
		client.NewPageQuery(offset, count, restrictions...),
		newRideSearchResult,
	)
}

func (a *API) SegmentByID(ctx context.Context, id int64) (segment *Segment, err error) {
	ctx, span := tracer.Start(ctx, "segment-by-id", trace.WithAttributes(attribute.Int64(TraceAttributeSegmentID, id)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, err := a.client.Call(ctx, fmt.Sprintf("segments/%d", id))
	if err != nil || response == nil {
		return nil, err
	}

	return a.newSegment(response.Get("segment"))
}

func (a *API) EffortByID(ctx context.Context, id int64) (effort *Effort, err error) {
	ctx, span := tracer.Start(ctx, "effort-by-id", trace.WithAttributes(attribute.Int64(TraceAttributeEffortID, id)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, err := a.client.Call(ctx, fmt.Sprintf("efforts/%d", id))
	if err != nil || response == nil {
		return nil, err
	}

	return a.newEffort(response.Get("effort"))
}
