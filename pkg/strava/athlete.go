package strava

import (
	"github.com/ridelog/strava-connector/pkg/strava/document"
	"github.com/ridelog/strava-connector/pkg/strava/errors"
)

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

// newUser returns nil for absent or null athletes.
func newUser(doc document.Document) (*User, error) {
	if doc.IsNil() {
		return nil, nil
	}

	var err error
	u := &User{}

	if u.ID, err = doc.Get("id").AsInt64(); err != nil {
		return nil, errors.Field("id", err)
	}

	if u.Name, err = doc.Get("name").StringOr(""); err != nil {
		return nil, errors.Field("name", err)
	}

	if u.Username, err = doc.Get("username").StringOr(""); err != nil {
		return nil, errors.Field("username", err)
	}

	return u, nil
}

type BikeModel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newBikeModel(doc document.Document) (*BikeModel, error) {
	if doc.IsNil() {
		return nil, nil
	}

	var err error
	b := &BikeModel{}

	if b.ID, err = doc.Get("id").AsInt64(); err != nil {
		return nil, errors.Field("id", err)
	}

	if b.Name, err = doc.Get("name").StringOr(""); err != nil {
		return nil, errors.Field("name", err)
	}

	return b, nil
}
