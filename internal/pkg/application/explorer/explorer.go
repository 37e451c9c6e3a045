package explorer

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/ridelog/strava-connector/pkg/strava"
	"github.com/ridelog/strava-connector/pkg/strava/client"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

//go:generate moq -rm -out explorer_mock.go . Explorer

// Explorer looks up records on behalf of the presentation layer. Lookups of
// records the service does not know about fail with errors.ErrNotFound.
type Explorer interface {
	Ride(ctx context.Context, id int64) (*strava.Ride, error)
	RideEfforts(ctx context.Context, id int64) ([]strava.RideEffort, error)
	SearchRides(ctx context.Context, offset, count int64, restrictions ...client.RequestDecoratorFunc) ([]strava.RideSearchResult, error)
	Segment(ctx context.Context, id int64) (*strava.Segment, error)
	SegmentEfforts(ctx context.Context, id, offset, count int64, restrictions ...client.RequestDecoratorFunc) ([]strava.SegmentEffort, error)
	Effort(ctx context.Context, id int64) (*strava.Effort, error)
	EffortStream(ctx context.Context, id int64) (*strava.EffortStream, error)
}

type app struct {
	api *strava.API
}

func New(api *strava.API) Explorer {
	return &app{api: api}
}

func (a *app) Ride(ctx context.Context, id int64) (*strava.Ride, error) {
	ride, err := a.api.RideByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if ride == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no ride with id %d", id))
	}

	return ride, nil
}

func (a *app) RideEfforts(ctx context.Context, id int64) ([]strava.RideEffort, error) {
	ride, err := a.Ride(ctx, id)
	if err != nil {
		return nil, err
	}

	return ride.Efforts(ctx)
}

func (a *app) SearchRides(ctx context.Context, offset, count int64, restrictions ...client.RequestDecoratorFunc) ([]strava.RideSearchResult, error) {
	results, err := a.api.SearchRides(ctx, offset, count, restrictions...)
	if err != nil {
		return nil, err
	}

	logging.GetFromContext(ctx).Debug("ride search done", "offset", offset, "count", count, "found", len(results))

	return results, nil
}

func (a *app) Segment(ctx context.Context, id int64) (*strava.Segment, error) {
	segment, err := a.api.SegmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if segment == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no segment with id %d", id))
	}

	return segment, nil
}

func (a *app) SegmentEfforts(ctx context.Context, id, offset, count int64, restrictions ...client.RequestDecoratorFunc) ([]strava.SegmentEffort, error) {
	segment, err := a.Segment(ctx, id)
	if err != nil {
		return nil, err
	}

	return segment.Efforts(ctx, offset, count, restrictions...)
}

func (a *app) Effort(ctx context.Context, id int64) (*strava.Effort, error) {
	effort, err := a.api.EffortByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if effort == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no effort with id %d", id))
	}

	return effort, nil
}

func (a *app) EffortStream(ctx context.Context, id int64) (*strava.EffortStream, error) {
	effort, err := a.Effort(ctx, id)
	if err != nil {
		return nil, err
	}

	stream, err := effort.Stream(ctx)
	if err != nil {
		return nil, err
	}

	return &stream, nil
}
