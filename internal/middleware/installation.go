package middleware

import (
	"context"
	"net/http"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/session"
)

// unexported, collision-proof context key
type installationContextKeyType struct{}

var installationKey = installationContextKeyType{}

// InstallationFromContext returns the installation attached by Attach.
func InstallationFromContext(ctx context.Context) (*auth.Installation, bool) {
	inst, ok := ctx.Value(installationKey).(*auth.Installation)
	return inst, ok && inst != nil
}

// WithInstallation returns ctx carrying inst.
func WithInstallation(ctx context.Context, inst *auth.Installation) context.Context {
	return context.WithValue(ctx, installationKey, inst)
}

// Installations resolves the browser's installation on every request.
type Installations struct {
	Manager *auth.Manager
	Cookie  session.CookieOptions
}

func NewInstallations(m *auth.Manager, cookie session.CookieOptions) *Installations {
	return &Installations{Manager: m, Cookie: cookie}
}

// Attach reads or issues the installation cookie and hydrates the
// installation's session controller before calling next.
func (i *Installations) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := session.InstallID(r)
		if !ok {
			var err error
			id, err = session.NewInstallID()
			if err != nil {
				logger.Error("install id generation failed", map[string]any{"error": err.Error()})
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}
		// refresh on every visit so the installation never lapses
		session.SetCookie(w, id, i.Cookie)

		inst := i.Manager.Open(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(WithInstallation(r.Context(), inst)))
	})
}
