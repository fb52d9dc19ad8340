package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/flash"
)

// wrap adapts net/http middleware to Gin. If the middleware answered the
// request itself the Gin chain stops.
func wrap(mw func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		mw(next).ServeHTTP(c.Writer, c.Request)

		if c.Writer.Written() {
			c.Abort()
		}
	}
}

func GinInstallation(i *Installations) gin.HandlerFunc { return wrap(i.Attach) }

func GinRequireAuth(g *Guard) gin.HandlerFunc { return wrap(g.RequireAuth) }

// GinRequireStaff must run after GinRequireAuth and the flash session.
func GinRequireStaff(g *Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c.Request) {
			g.Metrics.RecordGuard("forbidden")
			flash.Error(c, MsgStaffOnly)
			c.Redirect(http.StatusFound, auth.RouteHome)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Installation returns the request's installation; Attach must have run.
func Installation(c *gin.Context) *auth.Installation {
	inst, _ := InstallationFromContext(c.Request.Context())
	return inst
}
