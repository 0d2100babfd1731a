package app

import (
	"context"
	"errors"
	"testing"

	"github.com/auto-dns/notifyhealth/internal/config"
	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/engine"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	reports []domain.Report
	err     error
	closed  bool
}

func (r *recordingNotifier) Notify(_ context.Context, report domain.Report) error {
	r.reports = append(r.reports, report)
	return r.err
}

func (r *recordingNotifier) Close() error {
	r.closed = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Label: "com.example.monitor", Hostname: "myhostname"},
		Notify: config.NotifyConfig{Channel: config.ChannelPrint},
	}
}

func TestRunBuildsReport(t *testing.T) {
	eng := engine.NewMemoryEngine().
		AddListing(engine.Container{ID: "a1", Names: []string{"/t1"}, State: "running"}).
		AddListing(engine.Container{ID: "b2", Names: []string{"/t2"}, State: "exited"}).
		SetDetail("t1", engine.Detail{State: &engine.State{Status: "running", Health: &engine.Health{Status: "unhealthy"}}})
	n := &recordingNotifier{}

	a := newApp(testConfig(), eng, n, zerolog.Nop())
	require.NoError(t, a.Run(context.Background()))

	require.Len(t, n.reports, 1)
	assert.Equal(t, domain.Report{
		Running:  []domain.RunningContainerStatus{{Name: "t1", Health: domain.HealthUnhealthy}},
		Stopped:  []domain.StoppedContainerStatus{{Name: "t2", Status: "exited"}},
		Hostname: "myhostname",
	}, n.reports[0])
	assert.Len(t, eng.ListCalls(), 2)
}

func TestRunStopsOnEngineError(t *testing.T) {
	eng := engine.NewMemoryEngine().FailList(errors.New("daemon unreachable"))
	n := &recordingNotifier{}

	err := newApp(testConfig(), eng, n, zerolog.Nop()).Run(context.Background())
	var engineErr *domain.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Empty(t, n.reports)
}

func TestRunSurfacesDeliveryError(t *testing.T) {
	n := &recordingNotifier{err: domain.NewStatusDeliveryError("http://localhost", 500, "boom")}

	err := newApp(testConfig(), engine.NewMemoryEngine(), n, zerolog.Nop()).Run(context.Background())
	var deliveryErr *domain.DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, 500, deliveryErr.StatusCode)
	require.Len(t, n.reports, 1)
	assert.True(t, n.reports[0].IsEmpty())
}

func TestCloseClosesNotifier(t *testing.T) {
	n := &recordingNotifier{}
	a := newApp(testConfig(), engine.NewMemoryEngine(), n, zerolog.Nop())

	require.NoError(t, a.Close())
	assert.True(t, n.closed)
}
