package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/joho/godotenv"

	"github.com/ridelog/strava-connector/internal/pkg/application/explorer"
	"github.com/ridelog/strava-connector/internal/pkg/infrastructure/router"
	"github.com/ridelog/strava-connector/internal/pkg/presentation/api"
	"github.com/ridelog/strava-connector/pkg/strava"
	"github.com/ridelog/strava-connector/pkg/strava/client"
)

const serviceName string = "strava-explorer"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}

	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	apiClient, err := newClient(ctx)
	if err != nil {
		log.Error("invalid client configuration", "err", err.Error())
		os.Exit(1)
	}

	app := explorer.New(strava.New(apiClient))

	r := router.New(serviceName, log)
	api.RegisterHandlers(ctx, r, app)

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")

	log.Info("starting to listen for connections", "port", port)

	err = http.ListenAndServe(":"+port, r)
	if err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

func newClient(ctx context.Context) (client.Client, error) {
	attempts, err := strconv.Atoi(env.GetVariableOrDefault(ctx, "STRAVA_ATTEMPTS", strconv.Itoa(client.DefaultAttempts)))
	if err != nil {
		return nil, fmt.Errorf("STRAVA_ATTEMPTS must be a number: %w", err)
	}

	return client.NewClient(
		env.GetVariableOrDefault(ctx, "STRAVA_API_BASE", client.DefaultAPIBase),
		client.Attempts(attempts),
		client.Debug(env.GetVariableOrDefault(ctx, "STRAVA_CLIENT_DEBUG", "false")),
	), nil
}
