package kv

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var errUnsealable = errors.New("kv: value cannot be opened")

// SealedBackend encrypts the values of selected keys before they reach
// the wrapped backend.
type SealedBackend struct {
	inner  Backend
	key    [32]byte
	sealed map[string]struct{}
}

// NewSealed wraps inner so that values of keys are stored encrypted with
// a key derived from secret. With no keys given only the token is sealed.
func NewSealed(inner Backend, secret string, keys ...string) *SealedBackend {
	if len(keys) == 0 {
		keys = []string{KeyToken}
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return &SealedBackend{
		inner:  inner,
		key:    sha256.Sum256([]byte(secret)),
		sealed: set,
	}
}

func (b *SealedBackend) Open(installID string) Store {
	return &sealedStore{backend: b, inner: b.inner.Open(installID)}
}

func (b *SealedBackend) Close(ctx context.Context) error {
	return b.inner.Close(ctx)
}

func (b *SealedBackend) seal(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("kv: nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, &b.key)
	return base64.RawURLEncoding.EncodeToString(box), nil
}

func (b *SealedBackend) open(enc string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", errUnsealable
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", errUnsealable
	}
	return string(plain), nil
}

type sealedStore struct {
	backend *SealedBackend
	inner   Store
}

func (s *sealedStore) isSealed(key string) bool {
	_, ok := s.backend.sealed[key]
	return ok
}

func (s *sealedStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.inner.Get(ctx, key)
	if err != nil || !ok || !s.isSealed(key) {
		return v, ok, err
	}
	plain, err := s.backend.open(v)
	if err != nil {
		// rotated secret or tampered value
		return "", false, nil
	}
	return plain, true, nil
}

func (s *sealedStore) Set(ctx context.Context, key, value string) error {
	return s.Apply(ctx, Mutation{Set: map[string]string{key: value}})
}

func (s *sealedStore) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, key)
}

func (s *sealedStore) Apply(ctx context.Context, m Mutation) error {
	if len(m.Set) == 0 {
		return s.inner.Apply(ctx, m)
	}
	out := Mutation{Set: make(map[string]string, len(m.Set)), Remove: m.Remove}
	for k, v := range m.Set {
		if !s.isSealed(k) {
			out.Set[k] = v
			continue
		}
		enc, err := s.backend.seal(v)
		if err != nil {
			return err
		}
		out.Set[k] = enc
	}
	return s.inner.Apply(ctx, out)
}
