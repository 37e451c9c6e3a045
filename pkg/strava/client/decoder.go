package client

import (
	"github.com/ridelog/strava-connector/pkg/strava/document"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

type Outcome int

const (
	Success Outcome = iota
	LogicalError
	TransportFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case LogicalError:
		return "logical-error"
	case TransportFailure:
		return "transport-failure"
	}
	return "unknown"
}

// Result is the classified outcome of one response. Document is only set on
// Success and Err is set for the two failure outcomes.
type Result struct {
	Outcome  Outcome
	Document document.Document
	Err      error
}

// Decode parses a response body and classifies it. A payload that cannot be
// parsed is treated like a network fault so that it is retried, while a
// non-null top level "error" member is a logical error that never is.
func Decode(body []byte) Result {
	doc, err := document.Parse(body)
	if err != nil {
		return Result{
			Outcome: TransportFailure,
			Err:     errors.NewTransportError("malformed payload: %w", err),
		}
	}

	if doc.Kind() != document.Object {
		return Result{
			Outcome: TransportFailure,
			Err:     errors.NewTransportError("malformed payload: top level %s is not an object", doc.Kind()),
		}
	}

	if e := doc.Get("error"); !e.IsNil() {
		return Result{
			Outcome: LogicalError,
			Err:     errors.NewLogicalError(describe(e)),
		}
	}

	return Result{Outcome: Success, Document: doc}
}

func describe(e document.Document) string {
	if s, err := e.AsString(); err == nil {
		return s
	}

	if msg, err := e.Get("message").AsString(); err == nil {
		return msg
	}

	b, _ := e.MarshalJSON()
	return string(b)
}
