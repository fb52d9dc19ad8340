package provider

import (
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
)

// Chain holds the configured providers in the order they are tried.
// It performs no auth logic itself.
type Chain struct {
	providers []Provider
}

// NewChain registers providers in try order. Names must be unique.
func NewChain(list ...Provider) *Chain {
	return &Chain{providers: list}
}

// Strategies returns the providers in try order.
func (c *Chain) Strategies() []auth.Strategy {
	out := make([]auth.Strategy, 0, len(c.providers))
	for _, p := range c.providers {
		out = append(out, p)
	}
	return out
}
