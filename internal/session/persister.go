package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/kv"
)

var sessionKeys = []string{kv.KeyToken, kv.KeyUsername, kv.KeyIsStaff}

// Persister mirrors a Session into an installation's key/value store.
type Persister struct {
	store kv.Store
}

func NewPersister(store kv.Store) *Persister {
	return &Persister{store: store}
}

// Load rebuilds the persisted session. A partial record loads as anonymous.
func (p *Persister) Load(ctx context.Context) (Session, error) {
	username, hasUser, err := p.store.Get(ctx, kv.KeyUsername)
	if err != nil {
		return Session{}, fmt.Errorf("session: load username: %w", err)
	}
	token, hasToken, err := p.store.Get(ctx, kv.KeyToken)
	if err != nil {
		return Session{}, fmt.Errorf("session: load token: %w", err)
	}
	if !hasUser || !hasToken {
		return Anonymous(), nil
	}

	staffRaw, _, err := p.store.Get(ctx, kv.KeyIsStaff)
	if err != nil {
		return Session{}, fmt.Errorf("session: load is_staff: %w", err)
	}
	// only the exact string written by Save counts as staff
	s, err := Authenticated(username, token, staffRaw == "true")
	if err != nil {
		return Anonymous(), nil
	}
	return s, nil
}

// Save writes all three session keys in one mutation.
// Saving an anonymous session clears them.
func (p *Persister) Save(ctx context.Context, s Session) error {
	if !s.IsAuthenticated() {
		return p.Clear(ctx)
	}
	err := p.store.Apply(ctx, kv.Mutation{Set: map[string]string{
		kv.KeyToken:    s.token,
		kv.KeyUsername: s.username,
		kv.KeyIsStaff:  strconv.FormatBool(s.isStaff),
	}})
	if err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

func (p *Persister) Clear(ctx context.Context) error {
	if err := p.store.Apply(ctx, kv.Mutation{Remove: sessionKeys}); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}
