package notifier

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/formatter"
	"github.com/rs/zerolog"
)

// Webhook posts the formatted report to a URL. It makes a single attempt with no retry.
type Webhook struct {
	url       string
	client    httpSender
	formatter formatter.Formatter
	logger    zerolog.Logger
}

// NewWebhook builds a webhook notifier. A nil formatter sends the generic JSON report and a nil
// client uses a default http.Client.
func NewWebhook(url string, f formatter.Formatter, client httpSender, logger zerolog.Logger) *Webhook {
	if f == nil {
		f = formatter.NewJSONFormatter()
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Webhook{
		url:       url,
		client:    client,
		formatter: f,
		logger:    logger,
	}
}

func (w *Webhook) Notify(ctx context.Context, report domain.Report) error {
	if report.IsEmpty() {
		w.logger.Info().Msg("No problems found, skipping webhook")
		return nil
	}

	body, err := w.formatter.Format(report)
	if err != nil {
		return err
	}

	w.logger.Debug().Str("url", w.url).RawJSON("payload", body).Msg("Sending webhook")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return domain.NewDeliveryError(w.url, err)
	}
	req.Header.Set("content-type", "application/json")

	res, err := w.client.Do(req)
	if err != nil {
		return domain.NewDeliveryError(w.url, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.NewDeliveryError(w.url, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return domain.NewStatusDeliveryError(w.url, res.StatusCode, string(resBody))
	}

	w.logger.Info().Int("status", res.StatusCode).Str("body", string(resBody)).Msg("Webhook response")
	return nil
}
