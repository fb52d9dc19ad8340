package kv

import (
	"context"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/db"
)

func exerciseBackend(t *testing.T, backend Backend) {
	t.Helper()
	ctx := context.Background()

	alice := backend.Open("install-a")
	bob := backend.Open("install-b")

	_, ok, err := alice.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok, "fresh installation must be empty")

	require.NoError(t, alice.Set(ctx, KeyToken, "t1"))
	v, ok, err := alice.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", v)

	_, ok, err = bob.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok, "installations must not share keys")

	require.NoError(t, alice.Apply(ctx, Mutation{
		Set: map[string]string{KeyToken: "t2", KeyUsername: "alice", KeyIsStaff: "true"},
	}))
	for key, want := range map[string]string{KeyToken: "t2", KeyUsername: "alice", KeyIsStaff: "true"} {
		got, ok, err := alice.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	require.NoError(t, alice.Apply(ctx, Mutation{Remove: []string{KeyToken, KeyUsername, KeyIsStaff}}))
	for _, key := range []string{KeyToken, KeyUsername, KeyIsStaff} {
		_, ok, err := alice.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}

	// removing an absent key is not an error
	require.NoError(t, alice.Remove(ctx, KeyToken))
	require.NoError(t, alice.Apply(ctx, Mutation{}))
	assert.ErrorIs(t, alice.Set(ctx, "", "x"), ErrEmptyKey)
}

func TestMemoryBackend(t *testing.T) {
	exerciseBackend(t, NewMemory())
}

func TestRedisBackend(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backend := NewRedisBackend(client, "test:")
	t.Cleanup(func() { _ = backend.Close(context.Background()) })

	exerciseBackend(t, backend)

	require.NoError(t, backend.Open("x").Set(context.Background(), KeyUsername, "carol"))
	got, err := mr.Get("test:x:username")
	require.NoError(t, err)
	assert.Equal(t, "carol", got)
	assert.Zero(t, mr.TTL("test:x:username"), "values must not expire")
}

func TestSQLiteBackend(t *testing.T) {
	d, err := db.Open(context.Background(), db.DriverSQLite, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	backend := NewSQLBackend(d)
	t.Cleanup(func() { _ = backend.Close(context.Background()) })

	exerciseBackend(t, backend)
}

func TestSQLiteBackendSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	d, err := db.Open(ctx, db.DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLBackend(d).Open("local").Set(ctx, KeyUsername, "alice"))
	require.NoError(t, d.Close())

	d, err = db.Open(ctx, db.DriverSQLite, path)
	require.NoError(t, err)
	defer d.Close()

	v, ok, err := NewSQLBackend(d).Open("local").Get(ctx, KeyUsername)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestSealedBackend(t *testing.T) {
	ctx := context.Background()
	plain := NewMemory()
	backend := NewSealed(plain, "s3cret")

	exerciseBackend(t, backend)

	store := backend.Open("i")
	require.NoError(t, store.Apply(ctx, Mutation{Set: map[string]string{KeyToken: "abc", KeyUsername: "alice"}}))

	raw, ok, err := plain.Open("i").Get(ctx, KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, "abc", raw, "token must be stored encrypted")

	user, _, err := plain.Open("i").Get(ctx, KeyUsername)
	require.NoError(t, err)
	assert.Equal(t, "alice", user, "unsealed keys pass through")

	got, ok, err := store.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", got)

	other := NewSealed(plain, "rotated").Open("i")
	_, ok, err = other.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok, "value sealed under another secret reads as absent")
}

func TestFactory(t *testing.T) {
	b, err := New(Config{}, Dependencies{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = New(Config{Driver: DriverMemory, Secret: "x"}, Dependencies{})
	require.NoError(t, err)
	assert.IsType(t, &SealedBackend{}, b)

	_, err = New(Config{Driver: DriverRedis}, Dependencies{})
	assert.Error(t, err)

	_, err = New(Config{Driver: DriverPostgres}, Dependencies{})
	assert.Error(t, err)

	_, err = New(Config{Driver: "etcd"}, Dependencies{})
	assert.Error(t, err)
}
