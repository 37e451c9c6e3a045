package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"

	stravaerrors "github.com/ridelog/strava-connector/pkg/strava/errors"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var method = expects.RequestMethod
var path = expects.RequestPath

func TestCallReturnsDocument(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/rides/11013"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"id":11013,"ride":{"id":11013,"name":"Morning Ride"}}`)),
		),
	)
	defer s.Close()

	c := NewClient(s.URL() + "/")

	doc, err := c.Call(context.Background(), "rides/11013")
	is.NoErr(err)
	is.True(doc != nil)

	name, err := doc.Get("ride").Get("name").AsString()
	is.NoErr(err)
	is.Equal(name, "Morning Ride")
	is.Equal(s.RequestCount(), 1)
}

func TestCallTreatsErrorMemberAsNoResultWithoutRetrying(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"error":"Record not found"}`)),
		),
	)
	defer s.Close()

	c := NewClient(s.URL() + "/")

	doc, err := c.Call(context.Background(), "rides/0")
	is.NoErr(err)
	is.True(doc == nil)
	is.Equal(s.RequestCount(), 1) // logical errors must not be retried
}

func TestCallTreatsExplainedClientErrorAsNoResult(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusNotFound),
			response.Body([]byte(`{"error":"Invalid ride id"}`)),
		),
	)
	defer s.Close()

	c := NewClient(s.URL() + "/")

	doc, err := c.Call(context.Background(), "rides/abc")
	is.NoErr(err)
	is.True(doc == nil)
	is.Equal(s.RequestCount(), 1)
}

func TestCallIgnoresNullErrorMember(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`{"error":null,"segment":{"id":229781}}`)),
		),
	)
	defer s.Close()

	c := NewClient(s.URL() + "/")

	doc, err := c.Call(context.Background(), "segments/229781")
	is.NoErr(err)
	is.True(doc != nil)
}

func TestCallRetriesServerErrorsUntilAttemptsAreExhausted(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(http.StatusServiceUnavailable),
			response.Body([]byte(`{"error":"try again later"}`)),
		),
	)
	defer s.Close()

	c := NewClient(s.URL() + "/")

	doc, err := c.Call(context.Background(), "rides/11013")
	is.True(doc == nil)
	is.True(errors.Is(err, stravaerrors.ErrAPICallFailed))
	is.True(errors.Is(err, stravaerrors.ErrTransport))
	is.Equal(s.RequestCount(), DefaultAttempts)
}

func TestCallRetriesUnexplainedClientErrors(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(http.StatusNotFound),
		),
	)
	defer s.Close()

	c := NewClient(s.URL() + "/")

	doc, err := c.Call(context.Background(), "rides/11013")
	is.True(doc == nil)
	is.True(errors.Is(err, stravaerrors.ErrAPICallFailed))
	is.True(errors.Is(err, stravaerrors.ErrTransport))
	is.Equal(s.RequestCount(), DefaultAttempts) // a 404 without an error member is retried
}

func TestCallRetriesMalformedPayloads(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("text/html"),
			response.Code(http.StatusOK),
			response.Body([]byte(`<html><body>maintenance</body></html>`)),
		),
	)
	defer s.Close()

	c := NewClient(s.URL()+"/", Attempts(3))

	_, err := c.Call(context.Background(), "rides/11013")
	is.True(errors.Is(err, stravaerrors.ErrAPICallFailed))
	is.Equal(s.RequestCount(), 3)
}

func TestCallSucceedsAfterTransportFaultsWithinBudget(t *testing.T) {
	for faults := 0; faults < DefaultAttempts; faults++ {
		t.Run(fmt.Sprintf("%d faults", faults), func(t *testing.T) {
			is := is.New(t)

			rt := newFaultyTransport(faults, `{"effort":{"id":1}}`)
			c := NewClient("http://strava.test/api/v1/", HTTPClient(&http.Client{Transport: rt}))

			doc, err := c.Call(context.Background(), "efforts/1")
			is.NoErr(err)
			is.True(doc != nil)
			is.Equal(rt.calls, faults+1)
			is.Equal(rt.urls[len(rt.urls)-1], "http://strava.test/api/v1/efforts/1")
		})
	}
}

func TestCallFailsWithLastCauseAfterTenTransportFaults(t *testing.T) {
	is := is.New(t)

	rt := newFaultyTransport(DefaultAttempts+1, `{"effort":{"id":1}}`)
	c := NewClient("http://strava.test/api/v1/", HTTPClient(&http.Client{Transport: rt}))

	doc, err := c.Call(context.Background(), "efforts/1")
	is.True(doc == nil)
	is.True(errors.Is(err, stravaerrors.ErrAPICallFailed))
	is.True(errors.Is(err, rt.faults[DefaultAttempts-1])) // should wrap the tenth cause
	is.True(!errors.Is(err, rt.faults[DefaultAttempts-2]))
	is.Equal(rt.calls, DefaultAttempts) // the eleventh attempt must never happen

	var acf *stravaerrors.APICallFailedError
	is.True(errors.As(err, &acf))
	is.Equal(acf.Attempts, DefaultAttempts)
	is.Equal(acf.Path, "efforts/1")
}

func TestCallHonoursAttemptsOption(t *testing.T) {
	is := is.New(t)

	rt := newFaultyTransport(5, `{}`)
	c := NewClient("http://strava.test/", Attempts(2), HTTPClient(&http.Client{Transport: rt}))

	_, err := c.Call(context.Background(), "rides/1")
	is.True(errors.Is(err, stravaerrors.ErrAPICallFailed))
	is.Equal(rt.calls, 2)
}

func TestCallStopsWhenContextIsCancelled(t *testing.T) {
	is := is.New(t)

	rt := newFaultyTransport(0, `{}`)
	c := NewClient("http://strava.test/", HTTPClient(&http.Client{Transport: rt}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Call(ctx, "rides/1")
	is.True(errors.Is(err, stravaerrors.ErrAPICallFailed))
	is.True(errors.Is(err, context.Canceled))
	is.Equal(rt.calls, 0)
}

func TestDecodeClassifiesPayloads(t *testing.T) {
	is := is.New(t)

	is.Equal(Decode([]byte(`{"rides":[]}`)).Outcome, Success)
	is.Equal(Decode([]byte(` {"error":"Invalid"} `)).Outcome, LogicalError)
	is.Equal(Decode([]byte(`{"error":{"message":"Invalid"}}`)).Outcome, LogicalError)
	is.Equal(Decode([]byte(`{"error":null}`)).Outcome, Success)
	is.Equal(Decode([]byte(`[1,2,3]`)).Outcome, TransportFailure)
	is.Equal(Decode([]byte(`{"rides":[`)).Outcome, TransportFailure)
	is.Equal(Decode(nil).Outcome, TransportFailure)

	r := Decode([]byte(`{"error":"Record not found"}`))
	is.True(errors.Is(r.Err, stravaerrors.ErrLogical))
	is.True(strings.Contains(r.Err.Error(), "Record not found"))
}

// faultyTransport fails the first n round trips and then answers with body.
type faultyTransport struct {
	faults []error
	body   string
	calls  int
	urls   []string
}

func newFaultyTransport(n int, body string) *faultyTransport {
	ft := &faultyTransport{body: body}
	for i := range n {
		ft.faults = append(ft.faults, fmt.Errorf("connection reset #%d", i+1))
	}
	return ft
}

func (ft *faultyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ft.calls++
	ft.urls = append(ft.urls, req.URL.String())

	if ft.calls <= len(ft.faults) {
		return nil, ft.faults[ft.calls-1]
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(ft.body)),
		Request:    req,
	}, nil
}
