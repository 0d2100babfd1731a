package classifier

import (
	"context"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
)

// Classifier sorts the engine's containers into running-but-unhealthy and
// expected-but-stopped collections.
type Classifier struct {
	logger zerolog.Logger
	engine containerEngine
}

func NewClassifier(engine containerEngine, logger zerolog.Logger) *Classifier {
	return &Classifier{
		logger: logger,
		engine: engine,
	}
}

// ClassifyRunning lists running containers that are unhealthy or starting (or have no health
// check, when reportNoHealth is set) and inspects each of them concurrently for its health.
// A failed or incomplete inspection yields an unknown health instead of an error.
func (c *Classifier) ClassifyRunning(ctx context.Context, reportNoHealth bool) ([]domain.RunningContainerStatus, error) {
	containers, err := c.engine.List(ctx, runningFilter(reportNoHealth))
	if err != nil {
		return nil, err
	}

	names := make([]string, len(containers))
	for i, ctr := range containers {
		name, err := ContainerName(ctr)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}

	// Unbounded: one goroutine per listed container.
	statuses := make([]domain.RunningContainerStatus, len(names))
	p := pool.New()
	for i, name := range names {
		p.Go(func() {
			statuses[i] = domain.RunningContainerStatus{
				Name:   name,
				Health: c.inspectHealth(ctx, name),
			}
		})
	}
	p.Wait()

	return statuses, nil
}

func (c *Classifier) inspectHealth(ctx context.Context, name string) domain.HealthStatus {
	detail, err := c.engine.Inspect(ctx, name)
	if err != nil {
		c.logger.Warn().Err(err).Str("container", name).Msg("Inspect failed, reporting container without health status")
		return domain.HealthUnknown
	}
	if detail.State == nil || detail.State.Health == nil {
		return domain.HealthUnknown
	}
	health, ok := domain.ParseHealthStatus(detail.State.Health.Status)
	if !ok && detail.State.Health.Status != "" {
		c.logger.Warn().Str("container", name).Str("health", detail.State.Health.Status).Msg("Unrecognized health status")
	}
	return health
}

// ClassifyStopped lists containers carrying label that are in any non-running state. The state
// the engine reports is used as-is; nothing is inspected.
func (c *Classifier) ClassifyStopped(ctx context.Context, label string) ([]domain.StoppedContainerStatus, error) {
	containers, err := c.engine.List(ctx, stoppedFilter(label))
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.StoppedContainerStatus, 0, len(containers))
	for _, ctr := range containers {
		name, err := ContainerName(ctr)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, domain.StoppedContainerStatus{
			Name:   name,
			Status: ctr.State,
		})
	}
	return statuses, nil
}
