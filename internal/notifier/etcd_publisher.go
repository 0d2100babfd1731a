package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/auto-dns/notifyhealth/internal/config"
	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/formatter"
	"github.com/rs/zerolog"
	clientv3 "go.etcd.io/etcd/client/v3"
)

const defaultReportHost = "default"

// EtcdPublisher stores the latest report of a host under <prefix>/<hostname>. The key is bound
// to a lease so a host that stops reporting does not leave a stale report behind.
type EtcdPublisher struct {
	client    etcdClient
	cfg       *config.EtcdConfig
	formatter formatter.Formatter
	logger    zerolog.Logger
}

func NewEtcdPublisher(client etcdClient, cfg *config.EtcdConfig, logger zerolog.Logger) *EtcdPublisher {
	return &EtcdPublisher{
		client:    client,
		cfg:       cfg,
		formatter: formatter.NewJSONFormatter(),
		logger:    logger,
	}
}

func (ep *EtcdPublisher) key(hostname string) string {
	if hostname == "" {
		hostname = defaultReportHost
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(ep.cfg.Prefix, "/"), hostname)
}

// Notify writes the report, or deletes the host's key when there is nothing to report.
func (ep *EtcdPublisher) Notify(ctx context.Context, report domain.Report) error {
	key := ep.key(report.Hostname)

	if report.IsEmpty() {
		resp, err := ep.client.Delete(ctx, key)
		if err != nil {
			return domain.NewDeliveryError(key, err)
		}
		ep.logger.Info().Str("key", key).Int64("deleted", resp.Deleted).Msg("[etcd_publisher] No problems found, cleared report")
		return nil
	}

	body, err := ep.formatter.Format(report)
	if err != nil {
		return err
	}

	leaseResp, err := ep.client.Grant(ctx, ep.cfg.TTL)
	if err != nil {
		return domain.NewDeliveryError(key, fmt.Errorf("failed to create lease: %w", err))
	}
	if _, err := ep.client.Put(ctx, key, string(body), clientv3.WithLease(leaseResp.ID)); err != nil {
		return domain.NewDeliveryError(key, err)
	}
	ep.logger.Info().Str("key", key).Int64("ttl", ep.cfg.TTL).Msg("[etcd_publisher] Published report")
	return nil
}

func (ep *EtcdPublisher) Close() error {
	return ep.client.Close()
}
