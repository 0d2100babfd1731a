package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDockerClient struct {
	listOpts    []container.ListOptions
	summaries   []container.Summary
	listErr     error
	inspected   []string
	responses   map[string]container.InspectResponse
	inspectErr  error
	closeCalled bool
}

func (f *fakeDockerClient) ContainerList(_ context.Context, options container.ListOptions) ([]container.Summary, error) {
	f.listOpts = append(f.listOpts, options)
	return f.summaries, f.listErr
}

func (f *fakeDockerClient) ContainerInspect(_ context.Context, containerID string) (container.InspectResponse, error) {
	f.inspected = append(f.inspected, containerID)
	if f.inspectErr != nil {
		return container.InspectResponse{}, f.inspectErr
	}
	return f.responses[containerID], nil
}

func (f *fakeDockerClient) Close() error {
	f.closeCalled = true
	return nil
}

func TestDockerEngineListPassesFilterAndAll(t *testing.T) {
	cli := &fakeDockerClient{
		summaries: []container.Summary{
			{ID: "abc", Names: []string{"/web"}, State: "running", Labels: map[string]string{"team": "a"}},
		},
	}
	de := NewDockerEngine(cli, zerolog.Nop())

	filter := filters.NewArgs(filters.Arg("status", "running"))
	got, err := de.List(context.Background(), filter)
	require.NoError(t, err)

	require.Len(t, cli.listOpts, 1)
	assert.True(t, cli.listOpts[0].All)
	assert.Equal(t, []string{"running"}, cli.listOpts[0].Filters.Get("status"))
	assert.Equal(t, []Container{
		{ID: "abc", Names: []string{"/web"}, State: "running", Labels: map[string]string{"team": "a"}},
	}, got)
}

func TestDockerEngineListWrapsFailure(t *testing.T) {
	cause := errors.New("daemon unreachable")
	de := NewDockerEngine(&fakeDockerClient{listErr: cause}, zerolog.Nop())

	_, err := de.List(context.Background(), filters.NewArgs())
	var engineErr *domain.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.ErrorIs(t, err, cause)
}

func TestDockerEngineInspect(t *testing.T) {
	cli := &fakeDockerClient{
		responses: map[string]container.InspectResponse{
			"healthy": {
				ContainerJSONBase: &container.ContainerJSONBase{
					State: &container.State{
						Status: "running",
						Health: &container.Health{Status: "unhealthy"},
					},
				},
			},
			"nohealth": {
				ContainerJSONBase: &container.ContainerJSONBase{
					State: &container.State{Status: "running"},
				},
			},
			"nostate": {
				ContainerJSONBase: &container.ContainerJSONBase{},
			},
			"nobase": {},
		},
	}
	de := NewDockerEngine(cli, zerolog.Nop())
	ctx := context.Background()

	d, err := de.Inspect(ctx, "healthy")
	require.NoError(t, err)
	require.NotNil(t, d.State)
	require.NotNil(t, d.State.Health)
	assert.Equal(t, "unhealthy", d.State.Health.Status)

	d, err = de.Inspect(ctx, "nohealth")
	require.NoError(t, err)
	require.NotNil(t, d.State)
	assert.Nil(t, d.State.Health)

	d, err = de.Inspect(ctx, "nostate")
	require.NoError(t, err)
	assert.Nil(t, d.State)

	d, err = de.Inspect(ctx, "nobase")
	require.NoError(t, err)
	assert.Nil(t, d.State)

	assert.Equal(t, []string{"healthy", "nohealth", "nostate", "nobase"}, cli.inspected)
}

func TestDockerEngineInspectWrapsFailure(t *testing.T) {
	de := NewDockerEngine(&fakeDockerClient{inspectErr: errors.New("no such container")}, zerolog.Nop())

	_, err := de.Inspect(context.Background(), "ghost")
	var engineErr *domain.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Contains(t, engineErr.Op, "ghost")
}

func TestDockerEngineClose(t *testing.T) {
	cli := &fakeDockerClient{}
	require.NoError(t, NewDockerEngine(cli, zerolog.Nop()).Close())
	assert.True(t, cli.closeCalled)
}

func TestMemoryEngineServesListingsInOrder(t *testing.T) {
	m := NewMemoryEngine().
		AddListing(Container{ID: "1"}).
		AddListing(Container{ID: "2"}, Container{ID: "3"})
	ctx := context.Background()

	first, err := m.List(ctx, filters.NewArgs(filters.Arg("status", "running")))
	require.NoError(t, err)
	second, err := m.List(ctx, filters.NewArgs(filters.Arg("label", "x")))
	require.NoError(t, err)
	third, err := m.List(ctx, filters.NewArgs())
	require.NoError(t, err)

	assert.Equal(t, []Container{{ID: "1"}}, first)
	assert.Equal(t, []Container{{ID: "2"}, {ID: "3"}}, second)
	assert.Empty(t, third)
	calls := m.ListCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, []string{"x"}, calls[1].Get("label"))
}

func TestMemoryEngineInspectFailure(t *testing.T) {
	m := NewMemoryEngine().FailInspect("c1", errors.New("boom"))

	_, err := m.Inspect(context.Background(), "c1")
	var engineErr *domain.EngineError
	assert.ErrorAs(t, err, &engineErr)
	assert.Equal(t, []string{"c1"}, m.InspectCalls())
}
