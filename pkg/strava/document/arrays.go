package document

import (
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

// Float64s flattens an array of numbers. Absent and null values give a nil slice.
func (d Document) Float64s() ([]float64, error) {
	if d.IsNil() {
		return nil, nil
	}

	if d.Kind() != Array {
		return nil, d.mismatch(Array)
	}

	result := make([]float64, d.Len())
	for idx, e := range d.Elements() {
		f, err := e.AsFloat64()
		if err != nil {
			return nil, err
		}
		result[idx] = f
	}

	return result, nil
}

// Bools flattens an array of booleans. Absent and null values give a nil slice.
func (d Document) Bools() ([]bool, error) {
	if d.IsNil() {
		return nil, nil
	}

	if d.Kind() != Array {
		return nil, d.mismatch(Array)
	}

	result := make([]bool, d.Len())
	for idx, e := range d.Elements() {
		b, err := e.AsBool()
		if err != nil {
			return nil, err
		}
		result[idx] = b
	}

	return result, nil
}

// Pairs splits an array of [number, number] pairs, such as coordinates, into
// two parallel slices. Absent and null values give nil slices.
func (d Document) Pairs() (first, second []float64, err error) {
	if d.IsNil() {
		return nil, nil, nil
	}

	if d.Kind() != Array {
		return nil, nil, d.mismatch(Array)
	}

	count := d.Len()
	first = make([]float64, count)
	second = make([]float64, count)

	for idx, pair := range d.Elements() {
		if pair.Kind() != Array || pair.Len() != 2 {
			return nil, nil, errors.NewTypeMismatchError("pair of numbers", pair.Kind().String())
		}

		if first[idx], err = pair.At(0).AsFloat64(); err != nil {
			return nil, nil, err
		}

		if second[idx], err = pair.At(1).AsFloat64(); err != nil {
			return nil, nil, err
		}
	}

	return first, second, nil
}
