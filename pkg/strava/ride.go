package strava

import (
	"context"
	"fmt"

	"github.com/ridelog/strava-connector/pkg/strava/document"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

type Ride struct {
	Movement

	Location    string     `json:"location,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Bike        *BikeModel `json:"bike,omitempty"`
	Commute     bool       `json:"commute"`
	Trainer     bool       `json:"trainer"`
	Athlete     *User      `json:"athlete,omitempty"`

	api     *API
	efforts lazy[[]RideEffort]
}

func (a *API) newRide(doc document.Document) (*Ride, error) {
	m, err := newMovement(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ride: %w", err)
	}

	r := &Ride{Movement: m, api: a}

	if r.Location, err = doc.Get("location").StringOr(""); err != nil {
		return nil, errors.Field("location", err)
	}

	if r.Name, err = doc.Get("name").StringOr(""); err != nil {
		return nil, errors.Field("name", err)
	}

	if r.Description, err = doc.Get("description").StringOr(""); err != nil {
		return nil, errors.Field("description", err)
	}

	if r.Bike, err = newBikeModel(doc.Get("bike")); err != nil {
		return nil, errors.Field("bike", err)
	}

	if r.Commute, err = doc.Get("commute").BoolOr(false); err != nil {
		return nil, errors.Field("commute", err)
	}

	if r.Trainer, err = doc.Get("trainer").BoolOr(false); err != nil {
		return nil, errors.Field("trainer", err)
	}

	if r.Athlete, err = newUser(doc.Get("athlete")); err != nil {
		return nil, errors.Field("athlete", err)
	}

	return r, nil
}

// Efforts returns the segment efforts recorded during the ride. They are
// fetched on first use and kept, together with any failure, for the lifetime
// of the ride.
func (r *Ride) Efforts(ctx context.Context) ([]RideEffort, error) {
	return r.efforts.get(func() ([]RideEffort, error) {
		response, err := r.api.client.Call(ctx, fmt.Sprintf("rides/%d/efforts", r.ID))
		if err != nil {
			return nil, err
		}

		efforts := []RideEffort{}
		if response == nil {
			return efforts, nil
		}

		for _, e := range response.Get("efforts").Elements() {
			effort, err := newRideEffort(e)
			if err != nil {
				return nil, fmt.Errorf("failed to decode efforts of ride %d: %w", r.ID, err)
			}
			efforts = append(efforts, effort)
		}

		return efforts, nil
	})
}

// RideEffort is a segment effort as listed for a ride.
type RideEffort struct {
	EffortID    int64   `json:"effortId"`
	ElapsedTime float64 `json:"elapsedTime"`
	SegmentID   int64   `json:"segmentId"`
}

func newRideEffort(doc document.Document) (re RideEffort, err error) {
	if re.EffortID, err = doc.Get("id").AsInt64(); err != nil {
		return re, errors.Field("id", err)
	}

	if re.ElapsedTime, err = doc.Get("elapsed_time").AsFloat64(); err != nil {
		return re, errors.Field("elapsed_time", err)
	}

	if re.SegmentID, err = doc.Get("segment").Get("id").AsInt64(); err != nil {
		return re, errors.Field("segment.id", err)
	}

	return re, nil
}

type RideSearchResult struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newRideSearchResult(doc document.Document) (rsr RideSearchResult, err error) {
	if rsr.ID, err = doc.Get("id").AsInt64(); err != nil {
		return rsr, errors.Field("id", err)
	}

	if rsr.Name, err = doc.Get("name").StringOr(""); err != nil {
		return rsr, errors.Field("name", err)
	}

	return rsr, nil
}
