package notifier

import (
	"bytes"
	"context"
	"testing"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePrintsGroupedReport(t *testing.T) {
	var out bytes.Buffer
	report := domain.Report{
		Running: []domain.RunningContainerStatus{
			{Name: "t1", Health: domain.HealthUnhealthy},
			{Name: "t2", Health: domain.HealthUnhealthy},
			{Name: "t3", Health: domain.HealthStarting},
			{Name: "t4"},
		},
		Stopped: []domain.StoppedContainerStatus{
			{Name: "t5", Status: "exited"},
			{Name: "t6"},
		},
		Hostname: "myhostname",
	}

	require.NoError(t, NewConsole(&out, false).Notify(context.Background(), report))
	assert.Equal(t, "Server: myhostname.\n"+
		"Running, unhealthy containers:\n"+
		"t1\n"+
		"t2\n"+
		"Running containers (starting):\n"+
		"t3\n"+
		"Running containers without health status:\n"+
		"t4\n"+
		"The following containers are stopped:\n"+
		"t5 (exited)\n"+
		"t6\n", out.String())
}

func TestConsolePrintsNoProblems(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewConsole(&out, false).Notify(context.Background(), domain.Report{}))
	assert.Equal(t, "No running containers.\n"+
		"No container that was supposed to be running is stopped.\n", out.String())
}
