package auth

import "context"

// Identity is what a login strategy learned about the user.
// It contains facts only, no decisions.
type Identity struct {
	Provider string // strategy that accepted the credentials
	Username string
	Token    string
	IsStaff  bool
}

// Strategy is one way of exchanging credentials for an Identity.
type Strategy interface {
	Name() string
	Authenticate(ctx context.Context, username, password string) (*Identity, error)
}

// LandingResolver picks the route a fresh session lands on.
type LandingResolver interface {
	Resolve(identity *Identity) string
}

const (
	RouteHome  = "/"
	RouteAdmin = "/admin"
	RouteLogin = "/login"
)
