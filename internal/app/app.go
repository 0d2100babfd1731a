package app

import (
	"context"
	"fmt"
	"io"

	"github.com/auto-dns/notifyhealth/internal/classifier"
	"github.com/auto-dns/notifyhealth/internal/config"
	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/engine"
	"github.com/auto-dns/notifyhealth/internal/notifier"
	"github.com/docker/docker/api/types/filters"
	dockerCli "github.com/docker/docker/client"
	"github.com/rs/zerolog"
)

type containerEngine interface {
	List(ctx context.Context, filter filters.Args) ([]engine.Container, error)
	Inspect(ctx context.Context, name string) (engine.Detail, error)
	Close() error
}

type App struct {
	engine     containerEngine
	classifier *classifier.Classifier
	notifier   notifier.Notifier
	cfg        *config.Config
	logger     zerolog.Logger
}

// New creates a new App by wiring up all dependencies.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	// Docker CLI
	opts := []dockerCli.Opt{dockerCli.FromEnv, dockerCli.WithAPIVersionNegotiation()}
	if cfg.Docker.Host != "" {
		opts = append(opts, dockerCli.WithHost(cfg.Docker.Host))
	}
	dockerClient, err := dockerCli.NewClientWithOpts(opts...)
	if err != nil {
		return nil, domain.NewEngineError("connect", err)
	}
	eng := engine.NewDockerEngine(dockerClient, logger)

	// Notification channel
	n, err := notifier.New(cfg, logger)
	if err != nil {
		_ = eng.Close()
		return nil, err
	}

	return newApp(cfg, eng, n, logger), nil
}

func newApp(cfg *config.Config, eng containerEngine, n notifier.Notifier, logger zerolog.Logger) *App {
	return &App{
		engine:     eng,
		classifier: classifier.NewClassifier(eng, logger),
		notifier:   n,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run classifies the engine's containers once and hands the report to the notifier.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug().Str("channel", string(a.cfg.Notify.Channel)).Str("label", a.cfg.App.Label).Msg("Probe starting")

	running, err := a.classifier.ClassifyRunning(ctx, a.cfg.App.ReportNoHealth)
	if err != nil {
		return fmt.Errorf("classify running containers: %w", err)
	}
	for _, r := range running {
		a.logger.Warn().Str("container", r.Name).Str("health", string(r.Health)).Msg("Running container is not healthy")
	}

	stopped, err := a.classifier.ClassifyStopped(ctx, a.cfg.App.Label)
	if err != nil {
		return fmt.Errorf("classify stopped containers: %w", err)
	}
	for _, s := range stopped {
		a.logger.Warn().Str("container", s.Name).Str("status", s.Status).Msg("Container is not running")
	}

	report := domain.Report{
		Running:  running,
		Stopped:  stopped,
		Hostname: a.cfg.App.Hostname,
	}
	if err := a.notifier.Notify(ctx, report); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	var firstErr error
	if a.engine != nil {
		if err := a.engine.Close(); err != nil {
			firstErr = fmt.Errorf("close docker client: %w", err)
		}
	}
	if closer, ok := a.notifier.(io.Closer); ok {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close notifier: %w", err)
		}
	}
	return firstErr
}
