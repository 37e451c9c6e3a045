package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/joho/godotenv"

	"github.com/ridelog/strava-connector/internal/pkg/application/harvester"
	"github.com/ridelog/strava-connector/internal/pkg/infrastructure/storage"
	"github.com/ridelog/strava-connector/pkg/strava"
	"github.com/ridelog/strava-connector/pkg/strava/client"
)

const appName string = "effort-harvester"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}

	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	cfg, err := loadHarvestConfig(ctx)
	if err != nil {
		log.Error("failed to load harvest configuration", "err", err.Error())
		os.Exit(1)
	}

	attempts, err := strconv.Atoi(env.GetVariableOrDefault(ctx, "STRAVA_ATTEMPTS", strconv.Itoa(client.DefaultAttempts)))
	if err != nil {
		log.Error("STRAVA_ATTEMPTS must be a number", "err", err.Error())
		os.Exit(1)
	}

	db, err := storage.Connect(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		log.Error("failed to connect to database", "err", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	apiClient := client.NewClient(
		env.GetVariableOrDefault(ctx, "STRAVA_API_BASE", client.DefaultAPIBase),
		client.Attempts(attempts),
	)

	summary := harvester.New(strava.New(apiClient), db).Run(ctx, cfg)

	if summary.Failed > 0 && summary.Failed == summary.Segments {
		log.Error("no segment could be harvested")
		os.Exit(1)
	}
}

func loadHarvestConfig(ctx context.Context) (*harvester.Config, error) {
	path := env.GetVariableOrDefault(ctx, "HARVEST_CONFIG_PATH", "/opt/strava/config/harvest.yaml")

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return harvester.LoadConfiguration(f)
}
