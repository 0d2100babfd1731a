package engine

import (
	"context"
	"sync"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/docker/docker/api/types/filters"
)

// MemoryEngine is an in-memory engine. Listings are served in the order they were added,
// one per List call; details and failures are looked up by container name.
type MemoryEngine struct {
	mu           sync.Mutex
	listings     [][]Container
	listErr      error
	details      map[string]Detail
	inspectErrs  map[string]error
	listCalls    []filters.Args
	inspectCalls []string
}

func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{
		details:     make(map[string]Detail),
		inspectErrs: make(map[string]error),
	}
}

// AddListing queues the result of the next List call.
func (m *MemoryEngine) AddListing(containers ...Container) *MemoryEngine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings = append(m.listings, containers)
	return m
}

// FailList makes every subsequent List call fail with err.
func (m *MemoryEngine) FailList(err error) *MemoryEngine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
	return m
}

func (m *MemoryEngine) SetDetail(name string, detail Detail) *MemoryEngine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.details[name] = detail
	return m
}

func (m *MemoryEngine) FailInspect(name string, err error) *MemoryEngine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inspectErrs[name] = err
	return m
}

func (m *MemoryEngine) List(_ context.Context, filter filters.Args) ([]Container, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls = append(m.listCalls, filter.Clone())
	if m.listErr != nil {
		return nil, domain.NewEngineError("list containers", m.listErr)
	}
	if len(m.listings) == 0 {
		return nil, nil
	}
	next := m.listings[0]
	m.listings = m.listings[1:]
	return next, nil
}

// Inspect returns the detail registered for name, or an empty detail when none was set.
func (m *MemoryEngine) Inspect(_ context.Context, name string) (Detail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inspectCalls = append(m.inspectCalls, name)
	if err, ok := m.inspectErrs[name]; ok {
		return Detail{}, domain.NewEngineError("inspect container "+name, err)
	}
	return m.details[name], nil
}

func (m *MemoryEngine) ListCalls() []filters.Args {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]filters.Args(nil), m.listCalls...)
}

func (m *MemoryEngine) InspectCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.inspectCalls...)
}

func (m *MemoryEngine) Close() error {
	return nil
}
