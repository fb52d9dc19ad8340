package api

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/kv"
)

// TokenSource yields the current bearer token, or "" when there is none.
type TokenSource interface {
	BearerToken(ctx context.Context) (string, error)
}

type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) BearerToken(ctx context.Context) (string, error) { return f(ctx) }

// StoreTokens reads the token key of an installation store on every call,
// so a login or logout is seen by the next request.
func StoreTokens(store kv.Store) TokenSource {
	return TokenSourceFunc(func(ctx context.Context) (string, error) {
		tok, ok, err := store.Get(ctx, kv.KeyToken)
		if err != nil || !ok {
			return "", err
		}
		return tok, nil
	})
}

type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok, err := t.tokens.BearerToken(req.Context())
	if err != nil {
		return nil, fmt.Errorf("api: read token: %w", err)
	}
	if tok == "" {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request
	authed := req.Clone(req.Context())
	(&oauth2.Token{AccessToken: tok}).SetAuthHeader(authed)
	return t.base.RoundTrip(authed)
}
