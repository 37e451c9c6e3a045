package strava

import (
	"context"
	"fmt"

	"github.com/ridelog/strava-connector/pkg/strava/document"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

// Effort is a single attempt at a segment, part of a ride.
type Effort struct {
	Movement

	SegmentID int64 `json:"segmentId"`
	RideID    int64 `json:"rideId"`
	Athlete   *User `json:"athlete,omitempty"`

	api    *API
	stream lazy[EffortStream]
}

func (a *API) newEffort(doc document.Document) (*Effort, error) {
	m, err := newMovement(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode effort: %w", err)
	}

	e := &Effort{Movement: m, api: a}

	if e.SegmentID, err = doc.Get("segment").Get("id").AsInt64(); err != nil {
		return nil, errors.Field("segment.id", err)
	}

	if e.RideID, err = doc.Get("ride").Get("id").AsInt64(); err != nil {
		return nil, errors.Field("ride.id", err)
	}

	if e.Athlete, err = newUser(doc.Get("athlete")); err != nil {
		return nil, errors.Field("athlete", err)
	}

	return e, nil
}

// Stream returns the sampled data recorded during the effort. A stream the
// service does not know about is returned empty.
func (e *Effort) Stream(ctx context.Context) (EffortStream, error) {
	return e.stream.get(func() (EffortStream, error) {
		response, err := e.api.client.Call(ctx, fmt.Sprintf("stream/efforts/%d", e.ID))
		if err != nil {
			return EffortStream{}, err
		}

		if response == nil {
			return EffortStream{}, nil
		}

		stream, err := newEffortStream(*response)
		if err != nil {
			return EffortStream{}, fmt.Errorf("failed to decode stream of effort %d: %w", e.ID, err)
		}

		return stream, nil
	})
}
