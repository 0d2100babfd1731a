package formatter

import (
	"fmt"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/util"
)

const (
	cardTitle   = "Problem in containers! 🤕"
	cardSummary = "Problems in containers"

	noHealthValue = "no health status"
	noStatusValue = "no status"
)

type Fact struct {
	Name  string
	Value string
}

// Section is one heading of a chat card with the containers listed under it.
type Section struct {
	Heading string
	// Health is the shared health of a running-container section; unset for the stopped section.
	Health  domain.HealthStatus
	Stopped bool
	Facts   []Fact
}

// BuildSections lays out the report as ordered chat card sections. Running containers are split
// into runs of adjacent containers with the same health, one section per run, followed by a
// single section for the stopped containers.
func BuildSections(report domain.Report) []Section {
	var sections []Section
	runs := util.ChunkBy(report.Running, func(c domain.RunningContainerStatus) domain.HealthStatus {
		return c.Health
	})
	for _, run := range runs {
		section := Section{Heading: runningHeading(run.Key), Health: run.Key}
		for _, c := range run.Items {
			value := noHealthValue
			if c.Health.IsKnown() {
				value = string(c.Health)
			}
			section.Facts = append(section.Facts, Fact{Name: c.Name, Value: value})
		}
		sections = append(sections, section)
	}

	if len(report.Stopped) > 0 {
		section := Section{Heading: "The following containers are not running:", Stopped: true}
		for _, c := range report.Stopped {
			value := noStatusValue
			if c.Status != "" {
				value = c.Status
			}
			section.Facts = append(section.Facts, Fact{Name: c.Name, Value: value})
		}
		sections = append(sections, section)
	}
	return sections
}

func runningHeading(health domain.HealthStatus) string {
	switch {
	case health == domain.HealthUnhealthy:
		return "The following running containers are not healthy:"
	case health.IsKnown():
		return fmt.Sprintf("The following running containers are %s:", health)
	default:
		return "The following running containers have no health status:"
	}
}

func hostnameLine(hostname string) string {
	if hostname == "" {
		return ""
	}
	return fmt.Sprintf("Server: %s.", hostname)
}
