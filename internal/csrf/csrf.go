package csrf

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gcsrf "github.com/gorilla/csrf"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
)

const (
	CookieName = "storefront_csrf"
	FieldName  = "csrf_token"
	HeaderName = "X-CSRF-Token"
)

// Protect rejects state-changing requests without a token matching the
// signed cookie. Unless secure is set, plain HTTP requests skip the strict
// Referer check gorilla/csrf applies to TLS traffic.
func Protect(key []byte, secure bool) gin.HandlerFunc {
	protect := gcsrf.Protect(key,
		gcsrf.CookieName(CookieName),
		gcsrf.FieldName(FieldName),
		gcsrf.RequestHeader(HeaderName),
		gcsrf.Path("/"),
		gcsrf.Secure(secure),
		gcsrf.SameSite(gcsrf.SameSiteLaxMode),
		gcsrf.ErrorHandler(http.HandlerFunc(reject)),
	)

	return func(c *gin.Context) {
		passed := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})

		r := c.Request
		if r.TLS == nil && !secure {
			r = gcsrf.PlaintextHTTPRequest(r)
		}
		protect(next).ServeHTTP(c.Writer, r)

		if !passed {
			c.Abort()
		}
	}
}

// Token returns the masked token for the current request's forms.
func Token(c *gin.Context) string {
	return gcsrf.Token(c.Request)
}

func reject(w http.ResponseWriter, r *http.Request) {
	reason := "missing token"
	if err := gcsrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	logger.Warn("csrf check failed", map[string]any{
		"path":   r.URL.Path,
		"reason": reason,
	})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"invalid csrf token"}`))
}
