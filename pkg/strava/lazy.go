package strava

type cellState int

const (
	unfetched cellState = iota
	fetched
	fetchFailed
)

// lazy holds a sub-resource that is fetched on first access. Both a fetched
// value and a failed fetch are kept for the lifetime of the owning record, so
// fetch is invoked at most once. A lazy is not safe for concurrent use.
type lazy[T any] struct {
	state cellState
	value T
	err   error
}

func (l *lazy[T]) get(fetch func() (T, error)) (T, error) {
	switch l.state {
	case fetched:
		return l.value, nil
	case fetchFailed:
		var zero T
		return zero, l.err
	}

	value, err := fetch()
	if err != nil {
		l.state, l.err = fetchFailed, err
		return value, err
	}

	l.state, l.value = fetched, value
	return value, nil
}
