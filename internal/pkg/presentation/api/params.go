package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ridelog/strava-connector/pkg/strava/client"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

const (
	defaultCount int64 = client.PageSize
	maxCount     int64 = 20 * client.PageSize
)

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError(fmt.Sprintf("invalid id %q", chi.URLParam(r, "id")))
	}
	return id, nil
}

type pageParams struct {
	offset       int64
	count        int64
	restrictions []client.RequestDecoratorFunc
}

// parsePageParams reads offset, count and the search restrictions from the
// query string. Restrictions are applied in a fixed order.
func parsePageParams(q url.Values) (pageParams, error) {
	var err error
	p := pageParams{count: defaultCount}

	if p.offset, err = int64Param(q, "offset", 0); err != nil {
		return p, err
	}

	if p.count, err = int64Param(q, "count", defaultCount); err != nil {
		return p, err
	}

	if p.offset < 0 || p.count < 0 {
		return p, errors.NewBadRequestError("offset and count must not be negative")
	}

	if p.count > maxCount {
		return p, errors.NewBadRequestError(fmt.Sprintf("count must not exceed %d", maxCount))
	}

	if q.Has("best") {
		best, err := strconv.ParseBool(q.Get("best"))
		if err != nil {
			return p, errors.NewBadRequestError(fmt.Sprintf("invalid value for best: %q", q.Get("best")))
		}
		if best {
			p.restrictions = append(p.restrictions, client.Best())
		}
	}

	if q.Has("athleteId") {
		id, err := int64Param(q, "athleteId", 0)
		if err != nil {
			return p, err
		}
		p.restrictions = append(p.restrictions, client.AthleteID(id))
	}

	if name := q.Get("athleteName"); name != "" {
		p.restrictions = append(p.restrictions, client.AthleteName(name))
	}

	if q.Has("startDate") {
		t, err := dateParam(q, "startDate")
		if err != nil {
			return p, err
		}
		p.restrictions = append(p.restrictions, client.StartDate(t))
	}

	if q.Has("endDate") {
		t, err := dateParam(q, "endDate")
		if err != nil {
			return p, err
		}
		p.restrictions = append(p.restrictions, client.EndDate(t))
	}

	if q.Has("clubId") {
		id, err := int64Param(q, "clubId", 0)
		if err != nil {
			return p, err
		}
		p.restrictions = append(p.restrictions, client.ClubID(id))
	}

	if q.Has("startId") {
		id, err := int64Param(q, "startId", 0)
		if err != nil {
			return p, err
		}
		p.restrictions = append(p.restrictions, client.StartID(id))
	}

	return p, nil
}

func int64Param(q url.Values, key string, def int64) (int64, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError(fmt.Sprintf("invalid value for %s: %q", key, s))
	}

	return v, nil
}

func dateParam(q url.Values, key string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, q.Get(key))
	if err != nil {
		return time.Time{}, errors.NewBadRequestError(fmt.Sprintf("invalid value for %s: expected yyyy-mm-dd", key))
	}
	return t, nil
}
