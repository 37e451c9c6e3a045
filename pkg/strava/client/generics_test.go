package client

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"

	"github.com/ridelog/strava-connector/pkg/strava/document"
	stravaerrors "github.com/ridelog/strava-connector/pkg/strava/errors"
)

func TestCollectSpansSeveralPagesInServiceOrder(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 500}
	ids, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "rides"}, NewPageQuery(0, 120), decodeID)

	is.NoErr(err)
	is.Equal(len(ids), 120)
	is.Equal(svc.paths, []string{"rides?offset=0", "rides?offset=50", "rides?offset=100"})

	for idx, id := range ids {
		is.Equal(id, int64(idx)) // results should keep service order
	}
}

func TestCollectStopsOnShortPage(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 30}
	ids, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "rides"}, NewPageQuery(0, 120), decodeID)

	is.NoErr(err)
	is.Equal(len(ids), 30)
	is.Equal(len(svc.paths), 1)
}

func TestCollectWithZeroCountIssuesNoCalls(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 500}
	ids, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "rides"}, NewPageQuery(75, 0), decodeID)

	is.NoErr(err)
	is.Equal(len(ids), 0)
	is.True(ids != nil)
	is.Equal(len(svc.paths), 0)
}

func TestCollectContinuesAfterExactlyFullPage(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 50}
	ids, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "rides"}, NewPageQuery(0, 60), decodeID)

	is.NoErr(err)
	is.Equal(len(ids), 50)
	is.Equal(svc.paths, []string{"rides?offset=0", "rides?offset=50"}) // a full page must be followed up
}

func TestCollectStopsDecodingWhenCountIsReached(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 500}
	decoded := 0
	decoder := func(doc document.Document) (int64, error) {
		decoded++
		return decodeID(doc)
	}

	ids, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "rides"}, NewPageQuery(100, 7), decoder)

	is.NoErr(err)
	is.Equal(ids, []int64{100, 101, 102, 103, 104, 105, 106})
	is.Equal(decoded, 7)
	is.Equal(svc.paths, []string{"rides?offset=100"})
}

func TestCollectTruncatesOnLogicalError(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 500, logicalErrorAt: 50}
	ids, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "rides"}, NewPageQuery(0, 120), decodeID)

	is.NoErr(err)
	is.Equal(len(ids), 50)
	is.Equal(len(svc.paths), 2)
}

func TestCollectReturnsHardFailures(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 500, failAt: 50}
	_, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "rides"}, NewPageQuery(0, 120), decodeID)

	is.True(errors.Is(err, stravaerrors.ErrAPICallFailed))
}

func TestCollectReturnsTypeMismatches(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 10}
	_, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "rides"}, NewPageQuery(0, 10),
		func(doc document.Document) (string, error) {
			return doc.Get("id").AsString()
		})

	is.True(errors.Is(err, stravaerrors.ErrTypeMismatch))
}

func TestCollectTreatsMissingPayloadAsEmptyPage(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 500}
	ids, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "efforts"}, NewPageQuery(0, 120), decodeID)

	is.NoErr(err)
	is.Equal(len(ids), 0)
	is.Equal(len(svc.paths), 1)
}

func TestCollectBuildsRestrictionsOnceInGivenOrder(t *testing.T) {
	is := is.New(t)

	svc := &pagedService{total: 70}
	start := time.Date(2012, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2012, 7, 31, 0, 0, 0, 0, time.UTC)

	q := NewPageQuery(0, 100,
		Best(), AthleteID(1234), AthleteName("Arthur P"), StartDate(start), EndDate(end), ClubID(15), StartID(99),
	)

	_, err := Collect(context.Background(), svc, Listing{Path: "segments/123/efforts", Key: "rides"}, q, decodeID)
	is.NoErr(err)

	restriction := "best=true&athleteId=1234&athleteName=Arthur+P&startDate=2012-07-01&endDate=2012-07-31&clubId=15&startId=99&"
	is.Equal(svc.paths, []string{
		"segments/123/efforts?" + restriction + "offset=0",
		"segments/123/efforts?" + restriction + "offset=50",
	})
}

func TestCollectSegmentEffortsAgainstMockService(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/segments/123/efforts"),
			expects.QueryParamEquals("best", "true"),
			expects.QueryParamEquals("offset", "0"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"segment":{"id":123},"efforts":[{"id":688432},{"id":688433}]}`)),
		),
	)
	defer s.Close()

	c := NewClient(s.URL() + "/")

	ids, err := Collect(context.Background(), c, Listing{Path: "segments/123/efforts", Key: "efforts"}, NewPageQuery(0, 50, Best()), decodeID)

	is.NoErr(err)
	is.Equal(ids, []int64{688432, 688433})
	is.Equal(s.RequestCount(), 1)
}

func TestCollectStopsBeforeOffsetOverflows(t *testing.T) {
	is := is.New(t)

	svc := &fullPageService{}
	ids, err := Collect(context.Background(), svc, Listing{Path: "rides", Key: "rides"}, NewPageQuery(math.MaxInt64-60, 500), decodeID)

	is.NoErr(err)
	is.Equal(len(ids), 100)
	is.Equal(svc.paths, []string{
		fmt.Sprintf("rides?offset=%d", int64(math.MaxInt64-60)),
		fmt.Sprintf("rides?offset=%d", int64(math.MaxInt64-10)),
	}) // the next offset would not fit in an int64
}

func decodeID(doc document.Document) (int64, error) {
	return doc.Get("id").AsInt64()
}

// pagedService serves records with ids 0..total-1 under the "rides" member,
// PageSize records at a time.
type pagedService struct {
	total          int64
	logicalErrorAt int64
	failAt         int64
	paths          []string
}

func (ps *pagedService) Call(ctx context.Context, path string) (*document.Document, error) {
	ps.paths = append(ps.paths, path)

	var offset int64
	if _, err := fmt.Sscanf(path[strings.LastIndex(path, "offset="):], "offset=%d", &offset); err != nil {
		return nil, err
	}

	if ps.failAt > 0 && offset >= ps.failAt {
		return nil, stravaerrors.NewAPICallFailedError(path, DefaultAttempts, fmt.Errorf("connection refused"))
	}

	if ps.logicalErrorAt > 0 && offset >= ps.logicalErrorAt {
		return nil, nil
	}

	records := make([]string, 0, PageSize)
	for id := offset; id < ps.total && id < offset+PageSize; id++ {
		records = append(records, fmt.Sprintf(`{"id":%d}`, id))
	}

	doc, err := document.Parse([]byte(`{"rides":[` + strings.Join(records, ",") + `]}`))
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// fullPageService answers every call with a full page of records.
type fullPageService struct {
	paths []string
}

func (fs *fullPageService) Call(ctx context.Context, path string) (*document.Document, error) {
	fs.paths = append(fs.paths, path)

	records := make([]string, PageSize)
	for i := range records {
		records[i] = fmt.Sprintf(`{"id":%d}`, i)
	}

	doc, err := document.Parse([]byte(`{"rides":[` + strings.Join(records, ",") + `]}`))
	if err != nil {
		return nil, err
	}

	return &doc, nil
}
