package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/auto-dns/notifyhealth/internal/config"
	"github.com/auto-dns/notifyhealth/internal/formatter"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// New builds the notifier for the configured channel. Notifiers holding connections also
// implement io.Closer.
func New(cfg *config.Config, logger zerolog.Logger) (Notifier, error) {
	switch cfg.Notify.Channel {
	case config.ChannelPrint:
		return NewConsole(os.Stdout, !color.NoColor), nil
	case config.ChannelTeams:
		return NewWebhook(cfg.Notify.CallbackURL, formatter.NewTeamsFormatter(logger), nil, logger), nil
	case config.ChannelSlack:
		return NewWebhook(cfg.Notify.CallbackURL, formatter.NewSlackFormatter(logger), nil, logger), nil
	case config.ChannelWebhook:
		return NewWebhook(cfg.Notify.CallbackURL, nil, nil, logger), nil
	case config.ChannelEtcd:
		etcdClient, err := clientv3.New(clientv3.Config{
			Endpoints:   cfg.Etcd.Endpoints,
			DialTimeout: time.Duration(cfg.Etcd.DialTimeout * float64(time.Second)),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to etcd: %w", err)
		}
		return NewEtcdPublisher(etcdClient, &cfg.Etcd, logger), nil
	default:
		return nil, fmt.Errorf("unknown notification channel %q", cfg.Notify.Channel)
	}
}
