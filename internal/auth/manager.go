package auth

import (
	"context"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/kv"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/metrics"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/session"
)

// Installation bundles everything scoped to one client installation.
type Installation struct {
	ID         string
	Store      kv.Store
	API        *api.Client
	Controller *Controller
}

// Manager opens installations over a shared backend and API client.
type Manager struct {
	backend    kv.Backend
	client     *api.Client
	strategies []Strategy
	landing    LandingResolver
	metrics    *metrics.Metrics
}

func NewManager(
	backend kv.Backend,
	client *api.Client,
	strategies []Strategy,
	landing LandingResolver,
	m *metrics.Metrics,
) *Manager {
	return &Manager{
		backend:    backend,
		client:     client,
		strategies: strategies,
		landing:    landing,
		metrics:    m,
	}
}

// Open hydrates the installation's controller. Its API client reads the
// bearer token from the installation store on every request.
func (m *Manager) Open(ctx context.Context, installID string) *Installation {
	store := m.backend.Open(installID)
	ctrl := NewController(ctx, session.NewPersister(store), m.strategies, m.landing, WithMetrics(m.metrics))
	return &Installation{
		ID:         installID,
		Store:      store,
		API:        m.client.WithTokens(api.StoreTokens(store)),
		Controller: ctrl,
	}
}
