package integration

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

const defaultComposeFile = "../../docker-compose.deps.yml"

// InitDockerCompose starts Postgres, Redis, Neo4j, Vault and the Pub/Sub
// emulator for the integration suite and tears them down on Close.
type InitDockerCompose struct {
	// File overrides the compose file; defaults to docker-compose.deps.yml at the repo root.
	File    string
	compose *compose.DockerCompose
	logger  zerolog.Logger
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	i.logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "InitDockerCompose").Logger()

	file := i.File
	if file == "" {
		file = defaultComposeFile
	}

	dc, err := compose.NewDockerCompose(file)
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	services := map[string]string{
		"postgres": "database system is ready to accept connections",
		"vault":    "Vault server started!",
		"redis":    "Ready to accept connections",
		"neo4j":    "Started.",
		"pubsub":   "Server started, listening on",
	}
	for service, readyLog := range services {
		i.compose.WaitForService(service, wait.NewLogStrategy(readyLog).WithStartupTimeout(2*time.Minute))
	}

	if err := i.compose.Up(ctx, compose.Wait(true)); err != nil {
		return ctx, err
	}
	i.logger.Info().Str("file", file).Msg("backing services are up")
	return ctx, nil
}

func (i *InitDockerCompose) Close() {
	if i.compose == nil {
		return
	}

	cancelCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := i.compose.Down(
		cancelCtx,
		compose.RemoveOrphans(true),
		compose.RemoveVolumes(true),
		compose.RemoveImages(compose.RemoveImagesLocal),
	)
	if err != nil {
		i.logger.Error().Err(err).Msg("failed to stop docker compose")
	}
}
