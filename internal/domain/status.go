package domain

// HealthStatus is the health check result the engine reports for a running container.
// The zero value means the health is unknown or was never reported.
type HealthStatus string

const (
	HealthUnknown   HealthStatus = ""
	HealthStarting  HealthStatus = "starting"
	HealthHealthy   HealthStatus = "healthy"
	HealthUnhealthy HealthStatus = "unhealthy"
	HealthNone      HealthStatus = "none"
)

func (hs HealthStatus) IsValid() bool {
	switch hs {
	case HealthStarting,
		HealthHealthy,
		HealthUnhealthy,
		HealthNone:
		return true
	}
	return false
}

// IsKnown reports whether a concrete health value is present.
func (hs HealthStatus) IsKnown() bool {
	return hs != HealthUnknown
}

// ParseHealthStatus maps an engine health string onto a HealthStatus. Anything the
// engine should never send yields HealthUnknown and false.
func ParseHealthStatus(s string) (HealthStatus, bool) {
	hs := HealthStatus(s)
	if !hs.IsValid() {
		return HealthUnknown, false
	}
	return hs, true
}

// RunningContainerStatus describes a running container with a problematic health state.
type RunningContainerStatus struct {
	Name   string       `json:"name"`
	Health HealthStatus `json:"health,omitempty"`
}

// StoppedContainerStatus describes a labelled container that is not running.
type StoppedContainerStatus struct {
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// Report is the outcome of one classification pass. It is also the generic webhook body.
type Report struct {
	Running  []RunningContainerStatus `json:"running_containers"`
	Stopped  []StoppedContainerStatus `json:"stopped_containers"`
	Hostname string                   `json:"hostname,omitempty"`
}

func (r Report) IsEmpty() bool {
	return len(r.Running) == 0 && len(r.Stopped) == 0
}
