package strava

import (
	"github.com/ridelog/strava-connector/pkg/strava/document"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

// EffortStream holds parallel sample arrays. Arrays the service did not send
// are nil.
type EffortStream struct {
	Altitude         []float64 `json:"altitude,omitempty"`
	OriginalAltitude []float64 `json:"originalAltitude,omitempty"`
	Distance         []float64 `json:"distance,omitempty"`
	SmoothedGradient []float64 `json:"smoothedGradient,omitempty"`
	Latitude         []float64 `json:"latitude,omitempty"`
	Longitude        []float64 `json:"longitude,omitempty"`
	Time             []float64 `json:"time,omitempty"`
	TotalElevation   []float64 `json:"totalElevation,omitempty"`
	SmoothedVelocity []float64 `json:"smoothedVelocity,omitempty"`
	CalculatedWatts  []float64 `json:"calculatedWatts,omitempty"`
	Moving           []bool    `json:"moving,omitempty"`
	Outlier          []bool    `json:"outlier,omitempty"`
	Resting          []bool    `json:"resting,omitempty"`
}

func newEffortStream(doc document.Document) (es EffortStream, err error) {
	if es.Latitude, es.Longitude, err = doc.Get("latlng").Pairs(); err != nil {
		return es, errors.Field("latlng", err)
	}

	numbers := []struct {
		key    string
		target *[]float64
	}{
		{"altitude", &es.Altitude},
		{"altitude_original", &es.OriginalAltitude},
		{"distance", &es.Distance},
		{"time", &es.Time},
		{"grade_smooth", &es.SmoothedGradient},
		{"velocity_smooth", &es.SmoothedVelocity},
		{"total_elevation", &es.TotalElevation},
		{"watts_calc", &es.CalculatedWatts},
	}

	for _, n := range numbers {
		if *n.target, err = doc.Get(n.key).Float64s(); err != nil {
			return es, errors.Field(n.key, err)
		}
	}

	flags := []struct {
		key    string
		target *[]bool
	}{
		{"moving", &es.Moving},
		{"outlier", &es.Outlier},
		{"resting", &es.Resting},
	}

	for _, f := range flags {
		if *f.target, err = doc.Get(f.key).Bools(); err != nil {
			return es, errors.Field(f.key, err)
		}
	}

	return es, nil
}

// Samples returns the length of the longest array in the stream.
func (es EffortStream) Samples() int {
	n := max(len(es.Altitude), len(es.OriginalAltitude), len(es.Distance), len(es.SmoothedGradient),
		len(es.Latitude), len(es.Time), len(es.TotalElevation), len(es.SmoothedVelocity), len(es.CalculatedWatts))
	return max(n, len(es.Moving), len(es.Outlier), len(es.Resting))
}
