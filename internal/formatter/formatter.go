package formatter

import (
	"encoding/json"

	"github.com/auto-dns/notifyhealth/internal/domain"
)

// Formatter turns a report into a notification body.
type Formatter interface {
	Format(report domain.Report) ([]byte, error)
}

// JSONFormatter emits the report itself, for machine consumers.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(report domain.Report) ([]byte, error) {
	// Empty collections are sent as [] rather than null.
	if report.Running == nil {
		report.Running = []domain.RunningContainerStatus{}
	}
	if report.Stopped == nil {
		report.Stopped = []domain.StoppedContainerStatus{}
	}
	b, err := json.Marshal(report)
	if err != nil {
		return nil, domain.NewFormatError("json", err)
	}
	return b, nil
}
