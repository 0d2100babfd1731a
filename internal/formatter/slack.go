package formatter

import (
	"encoding/json"
	"strings"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/util"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// SlackFormatter renders the report as a Slack incoming webhook message, one attachment
// per section.
type SlackFormatter struct {
	logger zerolog.Logger
}

func NewSlackFormatter(logger zerolog.Logger) *SlackFormatter {
	return &SlackFormatter{logger: logger}
}

func (f *SlackFormatter) Format(report domain.Report) ([]byte, error) {
	lines := []string{"*" + cardTitle + "*"}
	if line := hostnameLine(report.Hostname); line != "" {
		lines = append(lines, line)
	}
	msg := slack.WebhookMessage{
		Text:        strings.Join(lines, "\n"),
		Attachments: util.Map(BuildSections(report), toAttachment),
	}
	f.logger.Debug().Int("attachments", len(msg.Attachments)).Msg("Message to be sent")

	b, err := json.Marshal(msg)
	if err != nil {
		return nil, domain.NewFormatError("slack", err)
	}
	return b, nil
}

func toAttachment(s Section) slack.Attachment {
	color := "warning"
	if s.Stopped || s.Health == domain.HealthUnhealthy {
		color = "danger"
	}
	return slack.Attachment{
		Color:    color,
		Fallback: s.Heading,
		Title:    s.Heading,
		Fields: util.Map(s.Facts, func(f Fact) slack.AttachmentField {
			return slack.AttachmentField{Title: f.Name, Value: f.Value, Short: true}
		}),
	}
}
