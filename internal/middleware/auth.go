package middleware

import (
	"net/http"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/metrics"
)

// State is the guard's view of a session for a single request.
type State int

const (
	Loading State = iota
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "loading"
	}
}

// Classify is evaluated on every request and never cached.
func Classify(ctrl *auth.Controller) State {
	if ctrl == nil || !ctrl.Ready() {
		return Loading
	}
	if ctrl.Session().IsAuthenticated() {
		return Authenticated
	}
	return Anonymous
}

const MsgStaffOnly = "Seller account required."

type Guard struct {
	Metrics *metrics.Metrics
}

func NewGuard(m *metrics.Metrics) *Guard {
	return &Guard{Metrics: m}
}

// RequireAuth renders the guarded handler only for authenticated sessions.
// Anonymous requests are redirected to the login route; while the session
// is still loading a progress page is served and nothing is redirected.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ctrl *auth.Controller
		if inst, ok := InstallationFromContext(r.Context()); ok {
			ctrl = inst.Controller
		}

		state := Classify(ctrl)
		g.Metrics.RecordGuard(state.String())

		switch state {
		case Loading:
			renderLoading(w, r)
		case Anonymous:
			http.Redirect(w, r, auth.RouteLogin, http.StatusFound)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// IsStaff reports whether the request carries a staff session.
func IsStaff(r *http.Request) bool {
	inst, ok := InstallationFromContext(r.Context())
	return ok && inst.Controller.Session().IsStaff()
}
