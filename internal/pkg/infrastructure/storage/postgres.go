package storage

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridelog/strava-connector/pkg/strava"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "strava"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

type Database struct {
	pool *pgxpool.Pool
}

// Connect opens a connection pool and makes sure the effort table exists.
func Connect(ctx context.Context, cfg Config) (*Database, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	db := &Database{pool: pool}

	err = db.initialize(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return db, nil
}

func (db *Database) Close() {
	db.pool.Close()
}

const createTable string = `
	CREATE TABLE IF NOT EXISTS segment_efforts (
		id           BIGINT PRIMARY KEY,
		segment_id   BIGINT NOT NULL,
		ride_id      BIGINT NOT NULL,
		athlete_id   BIGINT NULL,
		athlete_name TEXT NULL,
		start_date   TIMESTAMPTZ NOT NULL,
		elapsed_time DOUBLE PRECISION NOT NULL
	);
	CREATE INDEX IF NOT EXISTS segment_efforts_segment_idx ON segment_efforts (segment_id);`

func (db *Database) initialize(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, createTable)
	return err
}

const upsertEffort string = `
	INSERT INTO segment_efforts (id, segment_id, ride_id, athlete_id, athlete_name, start_date, elapsed_time)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		segment_id = EXCLUDED.segment_id,
		ride_id = EXCLUDED.ride_id,
		athlete_id = EXCLUDED.athlete_id,
		athlete_name = EXCLUDED.athlete_name,
		start_date = EXCLUDED.start_date,
		elapsed_time = EXCLUDED.elapsed_time;`

// SaveEfforts upserts all efforts in a single transaction.
func (db *Database) SaveEfforts(ctx context.Context, efforts []strava.SegmentEffort) error {
	if len(efforts) == 0 {
		return nil
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}

	for _, e := range efforts {
		_, err := tx.Exec(ctx, upsertEffort, effortRow(e)...)
		if err != nil {
			tx.Rollback(ctx)
			return err
		}
	}

	logging.GetFromContext(ctx).Debug("saved efforts", "count", len(efforts))

	return tx.Commit(ctx)
}

// effortRow returns the column values of an effort. Efforts without an
// athlete store nulls.
func effortRow(e strava.SegmentEffort) []any {
	var athleteID *int64
	var athleteName *string

	if e.Athlete != nil {
		athleteID = &e.Athlete.ID
		athleteName = &e.Athlete.Name
	}

	return []any{e.EffortID, e.SegmentID, e.RideID, athleteID, athleteName, e.StartDate, e.ElapsedTime}
}
