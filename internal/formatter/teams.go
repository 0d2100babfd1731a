package formatter

import (
	"encoding/json"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/util"
	"github.com/rs/zerolog"
)

type messageCard struct {
	Type     string        `json:"@type"`
	Context  string        `json:"@context"`
	Title    string        `json:"title"`
	Summary  string        `json:"summary"`
	Text     string        `json:"text,omitempty"`
	Sections []cardSection `json:"sections"`
}

type cardSection struct {
	Text  string     `json:"text"`
	Facts []cardFact `json:"facts"`
}

type cardFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TeamsFormatter renders the report as a Microsoft Teams MessageCard.
type TeamsFormatter struct {
	logger zerolog.Logger
}

func NewTeamsFormatter(logger zerolog.Logger) *TeamsFormatter {
	return &TeamsFormatter{logger: logger}
}

func (f *TeamsFormatter) Format(report domain.Report) ([]byte, error) {
	card := messageCard{
		Type:     "MessageCard",
		Context:  "https://schema.org/extensions",
		Title:    cardTitle,
		Summary:  cardSummary,
		Text:     hostnameLine(report.Hostname),
		Sections: util.Map(BuildSections(report), toCardSection),
	}
	f.logger.Debug().Interface("card", card).Msg("Message to be sent")

	b, err := json.Marshal(card)
	if err != nil {
		return nil, domain.NewFormatError("teams", err)
	}
	return b, nil
}

func toCardSection(s Section) cardSection {
	return cardSection{
		Text: s.Heading,
		Facts: util.Map(s.Facts, func(f Fact) cardFact {
			return cardFact{Name: f.Name, Value: f.Value}
		}),
	}
}
