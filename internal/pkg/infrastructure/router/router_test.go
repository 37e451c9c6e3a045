package router

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/matryer/is"

	stravaerrors "github.com/ridelog/strava-connector/pkg/strava/errors"
)

func TestPanickingHandlerReturnsProblemReport(t *testing.T) {
	is, ts, logs := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/panic", nil)

	is.Equal(resp.StatusCode, http.StatusInternalServerError)
	is.Equal(resp.Header.Get("Content-Type"), stravaerrors.ProblemReportContentType)
	is.True(strings.Contains(body, "Internal Error"))
	is.True(strings.Contains(logs.String(), "handler panicked"))
	is.True(strings.Contains(logs.String(), "status=500")) // recovered requests are still logged
}

func TestServedRequestsAreLogged(t *testing.T) {
	is, ts, logs := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/rides", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, "[]")
	is.True(strings.Contains(logs.String(), "path=/rides"))
	is.True(strings.Contains(logs.String(), "status=200"))
	is.True(strings.Contains(logs.String(), "bytes=2"))
}

func TestCrossOriginRequestsAreAllowed(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/rides", map[string]string{"Origin": "https://example.org"})

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Access-Control-Allow-Origin"), "*")
}

func newTestRequest(is *is.I, ts *httptest.Server, method, path string, headers map[string]string) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *logBuffer) {
	is := is.New(t)

	logs := &logBuffer{}
	r := New("router-test", slog.New(slog.NewTextHandler(logs, nil)))

	r.Get("/rides", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	})
	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	ts := httptest.NewServer(r)

	return is, ts, logs
}

// logBuffer is written by the server goroutine and read by the test.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (lb *logBuffer) Write(p []byte) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buf.Write(p)
}

func (lb *logBuffer) String() string {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buf.String()
}
