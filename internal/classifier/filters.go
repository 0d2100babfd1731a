package classifier

import (
	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/docker/docker/api/types/filters"
)

// stoppedStates are the engine states of a container that should be running but is not.
var stoppedStates = []string{"created", "paused", "restarting", "removing", "exited", "dead"}

// runningFilter selects running containers whose health needs attention. Filter keys are AND-ed,
// values within a key are OR-ed.
func runningFilter(reportNoHealth bool) filters.Args {
	filterArgs := filters.NewArgs()
	filterArgs.Add("status", "running")
	filterArgs.Add("health", string(domain.HealthUnhealthy))
	filterArgs.Add("health", string(domain.HealthStarting))
	if reportNoHealth {
		filterArgs.Add("health", string(domain.HealthNone))
	}
	return filterArgs
}

func stoppedFilter(label string) filters.Args {
	filterArgs := filters.NewArgs()
	for _, state := range stoppedStates {
		filterArgs.Add("status", state)
	}
	filterArgs.Add("label", label)
	return filterArgs
}
