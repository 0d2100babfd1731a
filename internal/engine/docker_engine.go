package engine

import (
	"context"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/util"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/rs/zerolog"
)

// DockerEngine answers list and inspect queries against a Docker daemon. It only reads, so a
// single instance can be shared by concurrent callers.
type DockerEngine struct {
	logger zerolog.Logger
	cli    dockerClient
}

func NewDockerEngine(cli dockerClient, logger zerolog.Logger) *DockerEngine {
	return &DockerEngine{
		logger: logger,
		cli:    cli,
	}
}

// List returns every container, stopped ones included, that matches the filter.
func (de *DockerEngine) List(ctx context.Context, filter filters.Args) ([]Container, error) {
	opts := container.ListOptions{
		All:     true,
		Filters: filter,
	}
	summaries, err := de.cli.ContainerList(ctx, opts)
	if err != nil {
		return nil, domain.NewEngineError("list containers", err)
	}
	de.logger.Debug().Int("count", len(summaries)).Msg("Listed containers")
	return util.Map(summaries, fromContainerSummary), nil
}

// Inspect fetches the detail of a single container by name or id.
func (de *DockerEngine) Inspect(ctx context.Context, name string) (Detail, error) {
	resp, err := de.cli.ContainerInspect(ctx, name)
	if err != nil {
		return Detail{}, domain.NewEngineError("inspect container "+name, err)
	}
	return fromInspectResponse(resp), nil
}

func (de *DockerEngine) Close() error {
	de.logger.Debug().Msg("Closing Docker client")
	return de.cli.Close()
}
