package credentials

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
)

func newService(t *testing.T, h http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewService(api.New(srv.URL + "/api"))
}

func reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestRegisterSuccess(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register/", r.URL.Path)
		reply(w, http.StatusCreated, map[string]string{"message": "User created", "token": "t", "username": "amy"})
	})
	require.NoError(t, svc.Register(context.Background(), "amy", "amy@example.com", "pw"))
}

func TestRegisterDuplicateUsesServerText(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusBadRequest, map[string]string{"error": "Username exists"})
	})
	err := svc.Register(context.Background(), "amy", "amy@example.com", "pw")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, "Username exists", apperr.UserMessage(err, ""))
}

func TestRegisterSellerWrongSecretKey(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"server text", map[string]string{"error": "Unauthorized - Wrong secret_key"}, "Unauthorized - Wrong secret_key"},
		{"no text", map[string]string{}, MsgSellerRegisterFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/admin/register/", r.URL.Path)
				require.NoError(t, r.ParseMultipartForm(1<<16))
				assert.Equal(t, "wrong", r.FormValue("secret_key"))
				reply(w, http.StatusForbidden, tt.body)
			})

			err := svc.RegisterSeller(context.Background(), "sam", "pw", "wrong")
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
			assert.Equal(t, tt.want, apperr.UserMessage(err, ""))
		})
	}
}

func TestRegisterServerErrorIsNetworkFailure(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusInternalServerError, map[string]string{"error": "db down"})
	})
	err := svc.Register(context.Background(), "amy", "a@b.c", "pw")
	assert.True(t, apperr.IsKind(err, apperr.KindNetworkOrServer))
}

func TestRegisterRequiresFields(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called")
	})
	err := svc.RegisterSeller(context.Background(), " ", "pw", "k")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
