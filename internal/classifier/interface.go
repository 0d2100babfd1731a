package classifier

import (
	"context"

	"github.com/auto-dns/notifyhealth/internal/engine"
	"github.com/docker/docker/api/types/filters"
)

type containerEngine interface {
	List(ctx context.Context, filter filters.Args) ([]engine.Container, error)
	Inspect(ctx context.Context, name string) (engine.Detail, error)
}
