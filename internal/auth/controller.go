package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/metrics"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/session"
)

const (
	MsgInvalidCredentials = "Invalid Credentials"
	MsgStoreUnavailable   = "Your session could not be loaded. Please try again."
)

var ErrNotReady = errors.New("auth: session not hydrated")

// Controller owns the session of one client installation. It is the only
// writer of the session and of its persisted copy.
type Controller struct {
	mu sync.RWMutex

	persister  *session.Persister
	strategies []Strategy
	landing    LandingResolver
	metrics    *metrics.Metrics

	current session.Session
	ready   bool
}

type ControllerOption func(*Controller)

func WithMetrics(m *metrics.Metrics) ControllerOption {
	return func(c *Controller) { c.metrics = m }
}

// NewController hydrates the session from persister. If the store cannot
// be read the controller stays not ready and every operation refuses.
func NewController(
	ctx context.Context,
	persister *session.Persister,
	strategies []Strategy,
	landing LandingResolver,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		persister:  persister,
		strategies: strategies,
		landing:    landing,
		current:    session.Anonymous(),
	}
	for _, opt := range opts {
		opt(c)
	}

	s, err := persister.Load(ctx)
	if err != nil {
		logger.Warn("session hydration failed", map[string]any{"error": err.Error()})
		return c
	}
	c.current = s
	c.ready = true
	return c
}

// Ready reports whether hydration finished.
func (c *Controller) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Session returns a copy of the current session.
func (c *Controller) Session() session.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Login tries every strategy in order and returns the landing route.
// On failure the session and its persisted copy are left untouched.
func (c *Controller) Login(ctx context.Context, username, password string) (string, error) {
	return c.login(ctx, c.strategies, username, password)
}

// LoginWith restricts the attempt to the named strategy.
func (c *Controller) LoginWith(ctx context.Context, strategy, username, password string) (string, error) {
	for _, s := range c.strategies {
		if s.Name() == strategy {
			return c.login(ctx, []Strategy{s}, username, password)
		}
	}
	return "", apperr.New(apperr.KindInvalidCredentials, "login", MsgInvalidCredentials)
}

func (c *Controller) login(ctx context.Context, strategies []Strategy, username, password string) (string, error) {
	if !c.Ready() {
		return "", apperr.Wrap(apperr.KindNetworkOrServer, "login", MsgStoreUnavailable, ErrNotReady)
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", apperr.New(apperr.KindInvalidCredentials, "login", MsgInvalidCredentials)
	}

	var lastErr error
	for _, strategy := range strategies {
		identity, err := strategy.Authenticate(ctx, username, password)
		if err == nil && identity == nil {
			err = errors.New("strategy returned no identity")
		}
		if err != nil {
			lastErr = err
			c.metrics.RecordLogin(strategy.Name(), "rejected")
			logger.Debug("login strategy rejected", map[string]any{
				"strategy": strategy.Name(),
				"username": username,
				"error":    err.Error(),
			})
			continue
		}

		next, err := session.Authenticated(identity.Username, identity.Token, identity.IsStaff)
		if err != nil {
			lastErr = err
			c.metrics.RecordLogin(strategy.Name(), "incomplete")
			continue
		}

		if err := c.commit(ctx, next); err != nil {
			return "", err
		}

		c.metrics.RecordLogin(strategy.Name(), "success")
		logger.Info("login succeeded", map[string]any{
			"strategy": strategy.Name(),
			"username": next.Username(),
			"is_staff": next.IsStaff(),
		})
		return c.landing.Resolve(identity), nil
	}

	if lastErr == nil {
		return "", apperr.New(apperr.KindInvalidCredentials, "login", MsgInvalidCredentials)
	}
	return "", apperr.Wrap(apperr.KindInvalidCredentials, "login", MsgInvalidCredentials, lastErr)
}

// Logout clears the session and returns the login route. It is safe to call
// on an anonymous session.
func (c *Controller) Logout(ctx context.Context) (string, error) {
	if !c.Ready() {
		return "", apperr.Wrap(apperr.KindNetworkOrServer, "logout", MsgStoreUnavailable, ErrNotReady)
	}
	if err := c.commit(ctx, session.Anonymous()); err != nil {
		return "", err
	}
	return RouteLogin, nil
}

// commit writes the persisted copy first; memory only follows a durable write.
func (c *Controller) commit(ctx context.Context, next session.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.persister.Save(ctx, next); err != nil {
		logger.Error("session write failed", map[string]any{"error": err.Error()})
		return apperr.Wrap(apperr.KindNetworkOrServer, "session", MsgStoreUnavailable, err)
	}
	c.current = next
	return nil
}
