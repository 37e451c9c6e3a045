package client

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type RequestDecoratorFunc func([]string) []string

// Best requests the best effort per athlete, sorted by elapsed time. The
// upstream service does not always honour it.
func Best() RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, "best=true")
	}
}

func AthleteID(id int64) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("athleteId=%d", id))
	}
}

func AthleteName(name string) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("athleteName=%s", url.QueryEscape(name)))
	}
}

func StartDate(t time.Time) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("startDate=%s", t.Format(time.DateOnly)))
	}
}

func EndDate(t time.Time) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("endDate=%s", t.Format(time.DateOnly)))
	}
}

func ClubID(id int64) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("clubId=%d", id))
	}
}

// StartID restricts results to ids greater than or equal to id.
func StartID(id int64) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("startId=%d", id))
	}
}

// PageQuery describes one paginated listing request. Count is the number of
// results still wanted, not a page size.
type PageQuery struct {
	offset       int64
	count        int64
	restrictions []RequestDecoratorFunc
}

func NewPageQuery(offset, count int64, restrictions ...RequestDecoratorFunc) PageQuery {
	return PageQuery{
		offset:       offset,
		count:        count,
		restrictions: append([]RequestDecoratorFunc(nil), restrictions...),
	}
}

func (q PageQuery) Offset() int64 { return q.offset }
func (q PageQuery) Count() int64  { return q.count }

// Restriction renders the restrictions as "k=v&" pairs, in the order they
// were given, ready to be followed by the offset parameter.
func (q PageQuery) Restriction() string {
	params := make([]string, 0, len(q.restrictions))
	for _, rdf := range q.restrictions {
		params = rdf(params)
	}

	if len(params) == 0 {
		return ""
	}

	return strings.Join(params, "&") + "&"
}
