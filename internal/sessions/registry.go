package sessions

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/trinhquocthinh/foodhub/internal/cart"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
	"github.com/trinhquocthinh/foodhub/pkg/logger"
	"github.com/trinhquocthinh/foodhub/pkg/metrics"
)

// RegistryParams groups dependencies for the session registry.
type RegistryParams struct {
	Backend         cart.Backend
	Logger          *logger.Logger
	Metrics         *metrics.CartMetrics
	NotificationTTL time.Duration
}

// Registry hands out one cart engine per session key. Engines are
// constructed with explicit dependencies and hydrated on first touch,
// replacing ambient provider lookup with injection.
type Registry struct {
	mu      sync.Mutex
	engines map[string]*cart.Engine

	backend         cart.Backend
	logg            *logger.Logger
	metrics         *metrics.CartMetrics
	notificationTTL time.Duration
}

// NewRegistry validates dependencies and returns an empty registry.
func NewRegistry(params RegistryParams) (*Registry, error) {
	if params.Backend == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart storage backend is required")
	}
	return &Registry{
		engines:         map[string]*cart.Engine{},
		backend:         params.Backend,
		logg:            params.Logger,
		metrics:         params.Metrics,
		notificationTTL: params.NotificationTTL,
	}, nil
}

// EngineFor returns the session's engine, constructing and hydrating it
// on first use.
func (r *Registry) EngineFor(ctx context.Context, sessionID string) (*cart.Engine, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	r.mu.Lock()
	engine, ok := r.engines[sessionID]
	if !ok {
		var err error
		engine, err = cart.NewEngine(cart.EngineParams{
			Storage:         cart.StorageFor(r.backend, sessionID),
			Logger:          r.logg,
			Metrics:         r.metrics,
			NotificationTTL: r.notificationTTL,
		})
		if err != nil {
			r.mu.Unlock()
			return nil, err
		}
		r.engines[sessionID] = engine
	}
	r.mu.Unlock()

	engine.Hydrate(ctx)
	return engine, nil
}
