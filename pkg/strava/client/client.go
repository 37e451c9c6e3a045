package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ridelog/strava-connector/pkg/strava/document"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

// Client issues GET requests against a fixed API base. Call returns a nil
// document and a nil error when the service reports a logical error, and an
// error matching errors.ErrAPICallFailed once every attempt has failed.
type Client interface {
	Call(ctx context.Context, path string) (*document.Document, error)
}

const (
	DefaultAPIBase  string = "http://strava.com/api/v1/"
	DefaultAttempts int    = 10
)

const (
	TraceAttributePath     string = "api-path"
	TraceAttributeAttempts string = "api-attempts"
)

var tracer = otel.Tracer("strava-connector/client")

func Attempts(n int) func(*apiClient) {
	return func(c *apiClient) {
		if n > 0 {
			c.attempts = n
		}
	}
}

func Debug(enabled string) func(*apiClient) {
	return func(c *apiClient) {
		c.debug = (enabled == "true")
	}
}

func HTTPClient(httpClient *http.Client) func(*apiClient) {
	return func(c *apiClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func NewClient(apiBase string, options ...func(*apiClient)) Client {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}

	c := &apiClient{
		baseURL:  apiBase,
		attempts: DefaultAttempts,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

type apiClient struct {
	baseURL    string
	attempts   int
	debug      bool
	httpClient *http.Client
}

func (c apiClient) Call(ctx context.Context, path string) (*document.Document, error) {
	var err error

	ctx, span := tracer.Start(ctx, "call",
		trace.WithAttributes(attribute.String(TraceAttributePath, path)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	endpoint := c.baseURL + path

	var lastFailure error
	attempt := 0

	for attempt < c.attempts {
		if ctxErr := ctx.Err(); ctxErr != nil {
			lastFailure = ctxErr
			break
		}

		attempt++
		result := c.send(ctx, endpoint)

		switch result.Outcome {
		case Success:
			span.SetAttributes(attribute.Int(TraceAttributeAttempts, attempt))
			return &result.Document, nil
		case LogicalError:
			span.SetAttributes(attribute.Int(TraceAttributeAttempts, attempt))
			log.Debug("service reported an error, treating it as no result", "path", path, "err", result.Err.Error())
			return nil, nil
		}

		lastFailure = result.Err
		log.Debug("api call attempt failed", "path", path, "attempt", attempt, "err", lastFailure.Error())
	}

	span.SetAttributes(attribute.Int(TraceAttributeAttempts, attempt))

	err = errors.NewAPICallFailedError(path, attempt, lastFailure)
	log.Warn("api call failed", "path", path, "attempts", attempt, "err", err.Error())

	return nil, err
}

func (c apiClient) send(ctx context.Context, endpoint string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return transportFailure(errors.NewTransportError("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(errors.NewTransportError("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(errors.NewTransportError("failed to read response body: %w", err))
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Warn("unexpected response", "request", string(reqbytes), "response", string(respbytes), "body", string(respBody))
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return transportFailure(errors.NewTransportError("unexpected response code %d", resp.StatusCode))
	}

	result := Decode(respBody)

	// a client error is only final when the service explained it in the body
	if resp.StatusCode >= http.StatusBadRequest && result.Outcome != LogicalError {
		return transportFailure(errors.NewTransportError("unexpected response code %d", resp.StatusCode))
	}

	return result
}

func transportFailure(err error) Result {
	return Result{Outcome: TransportFailure, Err: err}
}
