package client

import (
	"context"
	"fmt"
	"math"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/ridelog/strava-connector/pkg/strava/document"
)

// PageSize is the number of records the service returns in a full page.
const PageSize int64 = 50

// Listing names a paginated endpoint and the member of its response that
// holds the records, e.g. {"segments/123/efforts", "efforts"}.
type Listing struct {
	Path string
	Key  string
}

type RecordDecoder[T any] func(doc document.Document) (T, error)

// Collect pages through a listing until q.Count() records have been decoded,
// the service returns a short page or the service reports a logical error.
// Records are returned in the order the service produced them.
func Collect[T any](ctx context.Context, c Client, listing Listing, q PageQuery, decode RecordDecoder[T]) ([]T, error) {
	results := make([]T, 0)

	count := q.Count()
	if count <= 0 {
		return results, nil
	}

	logger := logging.GetFromContext(ctx)

	restriction := q.Restriction()
	offset := q.Offset()

	for count > 0 {
		path := fmt.Sprintf("%s?%soffset=%d", listing.Path, restriction, offset)

		logger.Debug("fetching page", "path", path)

		response, err := c.Call(ctx, path)
		if err != nil {
			return nil, err
		}

		if response == nil {
			break
		}

		page := response.Get(listing.Key).Elements()

		for _, record := range page {
			t, err := decode(record)
			if err != nil {
				return nil, fmt.Errorf("failed to decode %s record at offset %d: %w", listing.Key, offset, err)
			}

			results = append(results, t)
			count--

			if count == 0 {
				break
			}
		}

		if int64(len(page)) < PageSize || offset > math.MaxInt64-PageSize {
			break
		}

		offset += PageSize
	}

	return results, nil
}
