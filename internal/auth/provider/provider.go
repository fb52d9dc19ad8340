package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
)

// Provider is a login strategy backed by one backend endpoint.
// Implementations return identity facts only and never touch the session.
type Provider interface {
	auth.Strategy
}

// LoginFunc is a backend login call.
type LoginFunc func(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error)

var ErrNoToken = errors.New("login response carried no token")

// Endpoint adapts a backend login call into a Provider.
type Endpoint struct {
	name      string
	login     LoginFunc
	staffOnly bool
}

// NewEndpoint creates a provider. When staffOnly is set the endpoint only
// admits staff, so every identity it yields is staff.
func NewEndpoint(name string, login LoginFunc, staffOnly bool) *Endpoint {
	return &Endpoint{name: name, login: login, staffOnly: staffOnly}
}

func (e *Endpoint) Name() string { return e.name }

func (e *Endpoint) Authenticate(ctx context.Context, username, password string) (*auth.Identity, error) {
	resp, err := e.login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrNoToken
	}

	name := strings.TrimSpace(resp.Username)
	if name == "" {
		name = strings.TrimSpace(username)
	}

	return &auth.Identity{
		Provider: e.name,
		Username: name,
		Token:    resp.Token,
		IsStaff:  resp.IsStaff || e.staffOnly,
	}, nil
}
