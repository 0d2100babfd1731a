package notifier

import (
	"context"
	"net/http"

	"github.com/auto-dns/notifyhealth/internal/domain"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// Notifier delivers a report through one channel.
type Notifier interface {
	Notify(ctx context.Context, report domain.Report) error
}

type httpSender interface {
	Do(req *http.Request) (*http.Response, error)
}

type etcdClient interface {
	Put(ctx context.Context, key, val string, opts ...clientv3.OpOption) (*clientv3.PutResponse, error)
	Delete(ctx context.Context, key string, opts ...clientv3.OpOption) (*clientv3.DeleteResponse, error)
	Grant(ctx context.Context, ttl int64) (*clientv3.LeaseGrantResponse, error)
	Close() error
}
