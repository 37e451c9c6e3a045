package harvester

import (
	"fmt"
	"io"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/ridelog/strava-connector/pkg/strava/client"
)

type SegmentConfig struct {
	ID        int64  `yaml:"id"`
	Count     int64  `yaml:"count"`
	Best      bool   `yaml:"best"`
	ClubID    int64  `yaml:"clubId"`
	StartDate string `yaml:"startDate"`
	EndDate   string `yaml:"endDate"`
}

// Restrictions converts the segment settings into listing restrictions.
func (sc SegmentConfig) Restrictions() ([]client.RequestDecoratorFunc, error) {
	restrictions := []client.RequestDecoratorFunc{}

	if sc.Best {
		restrictions = append(restrictions, client.Best())
	}

	if sc.StartDate != "" {
		t, err := time.Parse(time.DateOnly, sc.StartDate)
		if err != nil {
			return nil, fmt.Errorf("segment %d: invalid start date: %w", sc.ID, err)
		}
		restrictions = append(restrictions, client.StartDate(t))
	}

	if sc.EndDate != "" {
		t, err := time.Parse(time.DateOnly, sc.EndDate)
		if err != nil {
			return nil, fmt.Errorf("segment %d: invalid end date: %w", sc.ID, err)
		}
		restrictions = append(restrictions, client.EndDate(t))
	}

	if sc.ClubID != 0 {
		restrictions = append(restrictions, client.ClubID(sc.ClubID))
	}

	return restrictions, nil
}

type Config struct {
	Segments []SegmentConfig `yaml:"segments"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	for idx := range cfg.Segments {
		if cfg.Segments[idx].Count == 0 {
			cfg.Segments[idx].Count = client.PageSize
		}
	}

	return cfg, nil
}
