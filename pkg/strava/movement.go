package strava

import (
	"time"

	"github.com/ridelog/strava-connector/pkg/strava/document"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

// Unknown is reported for optional measurements the service did not supply.
const Unknown float64 = -1

// Movement holds the properties rides and efforts have in common. Times are in
// seconds, distances in meters and speeds in kilometers per hour.
type Movement struct {
	ID             int64     `json:"id"`
	StartDate      time.Time `json:"startDate"`
	StartDateLocal time.Time `json:"startDateLocal"`
	TimeZoneOffset float64   `json:"timeZoneOffset"`
	ElapsedTime    float64   `json:"elapsedTime"`
	MovingTime     float64   `json:"movingTime"`
	Distance       float64   `json:"distance"`
	AverageSpeed   float64   `json:"averageSpeed"`
	AverageWatts   float64   `json:"averageWatts"`
	MaximumSpeed   float64   `json:"maximumSpeed"`
	ElevationGain  float64   `json:"elevationGain"`
}

func newMovement(doc document.Document) (m Movement, err error) {
	if m.ID, err = doc.Get("id").AsInt64(); err != nil {
		return m, errors.Field("id", err)
	}

	if m.StartDate, err = parseDate(doc.Get("startDate")); err != nil {
		return m, errors.Field("startDate", err)
	}

	if m.StartDateLocal, err = parseDate(doc.Get("startDateLocal")); err != nil {
		return m, errors.Field("startDateLocal", err)
	}

	if m.TimeZoneOffset, err = doc.Get("timeZoneOffset").AsFloat64(); err != nil {
		return m, errors.Field("timeZoneOffset", err)
	}

	if m.ElapsedTime, err = doc.Get("elapsedTime").AsFloat64(); err != nil {
		return m, errors.Field("elapsedTime", err)
	}

	if m.Distance, err = doc.Get("distance").AsFloat64(); err != nil {
		return m, errors.Field("distance", err)
	}

	if m.ElevationGain, err = doc.Get("elevationGain").AsFloat64(); err != nil {
		return m, errors.Field("elevationGain", err)
	}

	if m.MovingTime, err = doc.Get("movingTime").Float64Or(m.ElapsedTime); err != nil {
		return m, errors.Field("movingTime", err)
	}

	if m.AverageSpeed, err = speed(doc.Get("averageSpeed")); err != nil {
		return m, errors.Field("averageSpeed", err)
	}

	if m.AverageWatts, err = doc.Get("averageWatts").Float64Or(Unknown); err != nil {
		return m, errors.Field("averageWatts", err)
	}

	if m.MaximumSpeed, err = speed(doc.Get("maximumSpeed")); err != nil {
		return m, errors.Field("maximumSpeed", err)
	}

	return m, nil
}

// speed converts the service's meters per hour to kilometers per hour.
func speed(doc document.Document) (float64, error) {
	if doc.IsNil() {
		return Unknown, nil
	}

	v, err := doc.AsFloat64()
	if err != nil {
		return 0, err
	}

	return v / 1000, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// parseDate accepts timestamps with or without a zone. Timestamps without a
// zone are taken to be UTC.
func parseDate(doc document.Document) (time.Time, error) {
	s, err := doc.AsString()
	if err != nil {
		return time.Time{}, err
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.NewTypeMismatchError("date", "string "+s)
}
