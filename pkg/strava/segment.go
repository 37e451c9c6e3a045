package strava

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ridelog/strava-connector/pkg/strava/client"
	"github.com/ridelog/strava-connector/pkg/strava/document"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

type ClimbCategory int

const (
	NoCategory ClimbCategory = iota
	CategoryHC
	Category1
	Category2
	Category3
	Category4
)

// ParseClimbCategory maps the service's category labels. Anything it does not
// know, including "NC", is NoCategory.
func ParseClimbCategory(s string) ClimbCategory {
	switch s {
	case "HC":
		return CategoryHC
	case "1":
		return Category1
	case "2":
		return Category2
	case "3":
		return Category3
	case "4":
		return Category4
	}
	return NoCategory
}

func (cc ClimbCategory) String() string {
	switch cc {
	case CategoryHC:
		return "HC"
	case Category1:
		return "1"
	case Category2:
		return "2"
	case Category3:
		return "3"
	case Category4:
		return "4"
	}
	return "NC"
}

func (cc ClimbCategory) MarshalText() ([]byte, error) {
	return []byte(cc.String()), nil
}

type Segment struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Distance        float64       `json:"distance"`
	ElevationGain   float64       `json:"elevationGain"`
	ElevationHigh   float64       `json:"elevationHigh"`
	ElevationLow    float64       `json:"elevationLow"`
	AverageGradient float64       `json:"averageGradient"`
	ClimbCategory   ClimbCategory `json:"climbCategory"`

	api *API
}

func (a *API) newSegment(doc document.Document) (*Segment, error) {
	var err error
	s := &Segment{api: a}

	if s.ID, err = doc.Get("id").AsInt64(); err != nil {
		return nil, fmt.Errorf("failed to decode segment: %w", errors.Field("id", err))
	}

	if s.Name, err = doc.Get("name").StringOr(""); err != nil {
		return nil, errors.Field("name", err)
	}

	numbers := []struct {
		key    string
		target *float64
	}{
		{"distance", &s.Distance},
		{"elevationGain", &s.ElevationGain},
		{"elevationHigh", &s.ElevationHigh},
		{"elevationLow", &s.ElevationLow},
		{"averageGrade", &s.AverageGradient},
	}

	for _, n := range numbers {
		if *n.target, err = doc.Get(n.key).AsFloat64(); err != nil {
			return nil, errors.Field(n.key, err)
		}
	}

	category, err := doc.Get("climbCategory").StringOr("")
	if err != nil {
		return nil, errors.Field("climbCategory", err)
	}
	s.ClimbCategory = ParseClimbCategory(category)

	return s, nil
}

// Efforts returns up to count efforts on the segment matching the restrictions,
// skipping the first offset matches.
func (s *Segment) Efforts(ctx context.Context, offset, count int64, restrictions ...client.RequestDecoratorFunc) (efforts []SegmentEffort, err error) {
	ctx, span := tracer.Start(ctx, "segment-efforts", trace.WithAttributes(attribute.Int64(TraceAttributeSegmentID, s.ID)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return client.Collect(ctx, s.api.client,
		client.Listing{Path: fmt.Sprintf("segments/%d/efforts", s.ID), Key: "efforts"},
		client.NewPageQuery(offset, count, restrictions...),
		func(doc document.Document) (SegmentEffort, error) {
			return newSegmentEffort(doc, s.ID)
		},
	)
}

// SegmentEffort is an effort as listed for a segment.
type SegmentEffort struct {
	EffortID       int64     `json:"effortId"`
	RideID         int64     `json:"rideId"`
	SegmentID      int64     `json:"segmentId"`
	StartDate      time.Time `json:"startDate"`
	StartDateLocal time.Time `json:"startDateLocal"`
	TimeZoneOffset float64   `json:"timeZoneOffset"`
	ElapsedTime    float64   `json:"elapsedTime"`
	Athlete        *User     `json:"athlete,omitempty"`
}

func newSegmentEffort(doc document.Document, segmentID int64) (se SegmentEffort, err error) {
	se.SegmentID = segmentID

	if se.EffortID, err = doc.Get("id").AsInt64(); err != nil {
		return se, errors.Field("id", err)
	}

	if se.RideID, err = doc.Get("activityId").AsInt64(); err != nil {
		return se, errors.Field("activityId", err)
	}

	if se.StartDate, err = parseDate(doc.Get("startDate")); err != nil {
		return se, errors.Field("startDate", err)
	}

	if se.StartDateLocal, err = parseDate(doc.Get("startDateLocal")); err != nil {
		return se, errors.Field("startDateLocal", err)
	}

	if se.TimeZoneOffset, err = doc.Get("timeZoneOffset").AsFloat64(); err != nil {
		return se, errors.Field("timeZoneOffset", err)
	}

	if se.ElapsedTime, err = doc.Get("elapsedTime").AsFloat64(); err != nil {
		return se, errors.Field("elapsedTime", err)
	}

	if se.Athlete, err = newUser(doc.Get("athlete")); err != nil {
		return se, errors.Field("athlete", err)
	}

	return se, nil
}
