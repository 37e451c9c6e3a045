// Package document exposes parsed JSON as a read-only tree that can be navigated
// without a predeclared schema. Absent members resolve to a Missing document
// instead of failing, while coercing a value to the wrong scalar type reports
// a type mismatch.
package document

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

type Kind int

const (
	Missing Kind = iota
	Null
	Object
	Array
	String
	Number
	Bool
)

func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Null:
		return "null"
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Document is an immutable view of one JSON value. The zero value is Missing.
type Document struct {
	present bool
	value   any
}

// Parse decodes exactly one JSON value from b, ignoring surrounding whitespace.
func Parse(b []byte) (Document, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return Document{}, fmt.Errorf("empty payload")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Document{}, fmt.Errorf("failed to parse payload: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return Document{}, fmt.Errorf("unexpected data after top level value")
	}

	return Document{present: true, value: v}, nil
}

func (d Document) Kind() Kind {
	if !d.present {
		return Missing
	}

	switch d.value.(type) {
	case nil:
		return Null
	case map[string]any:
		return Object
	case []any:
		return Array
	case string:
		return String
	case json.Number, float64:
		return Number
	case bool:
		return Bool
	}

	return Null
}

// IsMissing is true for members and elements that were not present at all.
func (d Document) IsMissing() bool { return !d.present }

func (d Document) IsNull() bool { return d.present && d.value == nil }

// IsNil is true for both absent and explicit null values.
func (d Document) IsNil() bool { return !d.present || d.value == nil }

// Get returns the named member of an object. Absent members, and members of
// anything that is not an object, are Missing.
func (d Document) Get(key string) Document {
	obj, ok := d.value.(map[string]any)
	if !ok {
		return Document{}
	}

	v, ok := obj[key]
	if !ok {
		return Document{}
	}

	return Document{present: true, value: v}
}

// At returns the element at index i of an array, or Missing.
func (d Document) At(i int) Document {
	arr, ok := d.value.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return Document{}
	}

	return Document{present: true, value: arr[i]}
}

// Len returns the number of elements of an array or members of an object.
func (d Document) Len() int {
	switch v := d.value.(type) {
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	}
	return 0
}

func (d Document) Elements() []Document {
	arr, ok := d.value.([]any)
	if !ok {
		return nil
	}

	elements := make([]Document, len(arr))
	for idx := range arr {
		elements[idx] = Document{present: true, value: arr[idx]}
	}

	return elements
}

func (d Document) Keys() []string {
	obj, ok := d.value.(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func (d Document) mismatch(want Kind) error {
	return errors.NewTypeMismatchError(want.String(), d.Kind().String())
}

func (d Document) AsString() (string, error) {
	s, ok := d.value.(string)
	if !d.present || !ok {
		return "", d.mismatch(String)
	}
	return s, nil
}

func (d Document) AsBool() (bool, error) {
	b, ok := d.value.(bool)
	if !d.present || !ok {
		return false, d.mismatch(Bool)
	}
	return b, nil
}

func (d Document) AsFloat64() (float64, error) {
	switch v := d.value.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, errors.NewTypeMismatchError(Number.String(), "number "+string(v))
		}
		return f, nil
	case float64:
		return v, nil
	}
	return 0, d.mismatch(Number)
}

// AsInt64 accepts integral numbers, including ones written as 3.0 or 1e3.
func (d Document) AsInt64() (int64, error) {
	switch v := d.value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil || !isIntegral(f) {
			return 0, errors.NewTypeMismatchError("integer", "number "+string(v))
		}
		return int64(f), nil
	case float64:
		if !isIntegral(v) {
			return 0, errors.NewTypeMismatchError("integer", "fractional number")
		}
		return int64(v), nil
	}
	return 0, d.mismatch(Number)
}

// isIntegral reports whether f is a whole number within the int64 range. 2^63
// itself is representable as a float64 but not as an int64.
func isIntegral(f float64) bool {
	return f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63
}

func (d Document) StringOr(def string) (string, error) {
	if d.IsNil() {
		return def, nil
	}
	return d.AsString()
}

func (d Document) BoolOr(def bool) (bool, error) {
	if d.IsNil() {
		return def, nil
	}
	return d.AsBool()
}

func (d Document) Float64Or(def float64) (float64, error) {
	if d.IsNil() {
		return def, nil
	}
	return d.AsFloat64()
}

func (d Document) Int64Or(def int64) (int64, error) {
	if d.IsNil() {
		return def, nil
	}
	return d.AsInt64()
}

// MarshalJSON encodes the wrapped value. Missing documents encode as null.
func (d Document) MarshalJSON() ([]byte, error) {
	if !d.present {
		return []byte("null"), nil
	}
	return json.Marshal(d.value)
}
