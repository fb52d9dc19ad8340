package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/auth/login/":
			if body["username"] == "alice" && body["password"] == "pw" {
				_ = json.NewEncoder(w).Encode(map[string]any{"token": "ta", "username": "alice"})
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
		case "/api/auth/admin/login/":
			w.WriteHeader(http.StatusForbidden)
		case "/api/products/":
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"id": 1, "title": "Trail Shoe", "price": "120.00", "rating": 4.5},
				{"id": 2, "title": "Road Shoe", "price": "80.00"},
			})
		case "/api/cart/":
			if r.Header.Get("Authorization") != "Bearer ta" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"cart_id": 1, "items": []map[string]any{
				{"id": 5, "product_id": 1, "title": "Trail Shoe", "price": "120.00", "quantity": 2},
			}})
		case "/api/payu/initiate/":
			_ = json.NewEncoder(w).Encode(map[string]any{"action": "https://gateway.test/pay", "txnid": "T1"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

type shopctl struct {
	opts Options
}

func newShopctl(t *testing.T) *shopctl {
	srv := fakeBackend(t)
	return &shopctl{opts: Options{
		APIBaseURL: srv.URL + "/api",
		StatePath:  filepath.Join(t.TempDir(), "nested", "state.db"),
	}}
}

func (s *shopctl) run(stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	err := Execute(context.Background(), s.opts, args, strings.NewReader(stdin), &out, io.Discard)
	return out.String(), err
}

func TestLoginPersistsAcrossInvocations(t *testing.T) {
	s := newShopctl(t)

	_, err := s.run("", "whoami")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	out, err := s.run("pw\n", "login", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as alice (shopper)")

	out, err = s.run("", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice staff=false\n", out)

	out, err = s.run("", "cart")
	require.NoError(t, err)
	assert.Contains(t, out, "Trail Shoe")
	assert.Contains(t, out, "240.00")

	_, err = s.run("", "logout")
	require.NoError(t, err)
	_, err = s.run("", "cart")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestFailedCommandClosesState(t *testing.T) {
	s := newShopctl(t)
	ctx := context.Background()

	r := &runner{opts: s.opts}
	err := r.execute(ctx, []string{"whoami"}, strings.NewReader(""), io.Discard, io.Discard)
	require.ErrorIs(t, err, ErrNotLoggedIn)

	require.NotNil(t, r.env)
	assert.Error(t, r.env.db.PingContext(ctx), "state database is closed after a failing command")
	assert.NoError(t, r.close(ctx))

	_, err = s.run("", "products")
	assert.NoError(t, err)
}

func TestLoginRejected(t *testing.T) {
	s := newShopctl(t)

	_, err := s.run("", "login", "alice", "--password", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid Credentials", err.Error())
}

func TestProductsFilter(t *testing.T) {
	s := newShopctl(t)

	out, err := s.run("", "products", "--min-rating", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Trail Shoe")
	assert.NotContains(t, out, "Road Shoe")
}

func TestAddressAndCheckout(t *testing.T) {
	s := newShopctl(t)
	_, err := s.run("", "login", "alice", "-p", "pw")
	require.NoError(t, err)

	_, err = s.run("", "checkout")
	require.Error(t, err)
	assert.Equal(t, "Please select a delivery address!", err.Error())

	_, err = s.run("", "address", "add")
	require.Error(t, err)
	assert.Equal(t, "Please enter an address", err.Error())

	out, err := s.run("", "address", "add", "--line", "1 Main St", "--city", "Pune")
	require.NoError(t, err)
	assert.Contains(t, out, "Address saved")

	out, err = s.run("", "address")
	require.NoError(t, err)
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "1 Main St")

	out, err = s.run("", "checkout")
	require.NoError(t, err)
	assert.Contains(t, out, "POST https://gateway.test/pay")
	assert.Contains(t, out, "txnid=T1")
	assert.Contains(t, out, "hash=\n")
}

func TestReadSecret(t *testing.T) {
	v, err := readSecret("flag", strings.NewReader("ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "flag", v)

	v, err = readSecret("", strings.NewReader("from-stdin\r\nmore"))
	require.NoError(t, err)
	assert.Equal(t, "from-stdin", v)
}
