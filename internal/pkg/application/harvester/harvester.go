package harvester

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ridelog/strava-connector/pkg/strava"
)

var tracer = otel.Tracer("strava-connector/harvester")

//go:generate moq -rm -out store_mock.go . Store

// Store persists segment efforts. Saving an effort that is already stored
// replaces it.
type Store interface {
	SaveEfforts(ctx context.Context, efforts []strava.SegmentEffort) error
}

type Summary struct {
	Segments int
	Failed   int
	Efforts  int
}

type Harvester struct {
	api   *strava.API
	store Store
}

func New(api *strava.API, store Store) *Harvester {
	return &Harvester{api: api, store: store}
}

// Run harvests the efforts of every configured segment. A segment that cannot
// be harvested is logged and counted, and does not stop the remaining ones.
func (h *Harvester) Run(ctx context.Context, cfg *Config) Summary {
	log := logging.GetFromContext(ctx)
	summary := Summary{}

	for _, sc := range cfg.Segments {
		summary.Segments++

		segmentCtx := logging.NewContextWithLogger(ctx, log, "segment_id", sc.ID)
		l := logging.GetFromContext(segmentCtx)

		count, err := h.harvest(segmentCtx, sc)
		if err != nil {
			l.Error("failed to harvest segment", "err", err.Error())
			summary.Failed++
			continue
		}

		l.Debug("harvested segment", slog.Int("count", count))
		summary.Efforts += count
	}

	log.Info("harvest done",
		slog.Int("segments", summary.Segments), slog.Int("failed", summary.Failed), slog.Int("efforts", summary.Efforts))

	return summary
}

func (h *Harvester) harvest(ctx context.Context, sc SegmentConfig) (count int, err error) {
	ctx, span := tracer.Start(ctx, "harvest-segment", trace.WithAttributes(attribute.Int64(strava.TraceAttributeSegmentID, sc.ID)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	restrictions, err := sc.Restrictions()
	if err != nil {
		return 0, err
	}

	segment, err := h.api.SegmentByID(ctx, sc.ID)
	if err != nil {
		return 0, err
	}

	if segment == nil {
		return 0, fmt.Errorf("segment %d does not exist", sc.ID)
	}

	efforts, err := segment.Efforts(ctx, 0, sc.Count, restrictions...)
	if err != nil {
		return 0, err
	}

	if len(efforts) == 0 {
		return 0, nil
	}

	if err = h.store.SaveEfforts(ctx, efforts); err != nil {
		return 0, fmt.Errorf("failed to save efforts: %w", err)
	}

	return len(efforts), nil
}
