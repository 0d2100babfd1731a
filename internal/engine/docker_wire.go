package engine

import (
	"github.com/docker/docker/api/types/container"
)

func fromContainerSummary(c container.Summary) Container {
	return Container{
		ID:     c.ID,
		Names:  c.Names,
		State:  string(c.State),
		Labels: c.Labels,
	}
}

func fromInspectResponse(resp container.InspectResponse) Detail {
	if resp.ContainerJSONBase == nil || resp.ContainerJSONBase.State == nil {
		return Detail{}
	}
	st := resp.ContainerJSONBase.State
	state := &State{Status: string(st.Status)}
	if st.Health != nil {
		state.Health = &Health{Status: string(st.Health.Status)}
	}
	return Detail{State: state}
}
