package kv

import (
	"context"
	"errors"
)

// Keys persisted for every client installation.
const (
	KeyToken             = "token"
	KeyUsername          = "username"
	KeyIsStaff           = "is_staff"
	KeyAddresses         = "addresses"
	KeySelectedAddressID = "selected_address_id"
)

var ErrEmptyKey = errors.New("kv: empty key")

// Store is the key/value space of a single client installation.
// Values are opaque strings; callers own any type coercion.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Apply(ctx context.Context, m Mutation) error
}

// Backend hands out installation-scoped stores over one shared connection.
type Backend interface {
	Open(installID string) Store
	Close(ctx context.Context) error
}

// Mutation groups writes that must land together.
type Mutation struct {
	Set    map[string]string
	Remove []string
}

// Empty reports whether applying m would change nothing.
func (m Mutation) Empty() bool {
	return len(m.Set) == 0 && len(m.Remove) == 0
}

func (m Mutation) validate() error {
	for k := range m.Set {
		if k == "" {
			return ErrEmptyKey
		}
	}
	for _, k := range m.Remove {
		if k == "" {
			return ErrEmptyKey
		}
	}
	return nil
}
