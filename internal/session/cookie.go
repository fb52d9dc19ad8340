package session

import (
	"net/http"
	"time"
)

const (
	CookieName = "storefront_install"

	// installations have no expiry; the cookie is renewed on every visit
	cookieLifetime = 365 * 24 * time.Hour
)

// CookieOptions defines how the installation cookie is issued.
type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
	Domain   string
}

func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

// SetCookie issues the installation cookie to the client.
func SetCookie(w http.ResponseWriter, installID string, opts CookieOptions) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    installID,
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   int(cookieLifetime.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// InstallID reads the installation id from r, if a valid one is present.
func InstallID(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || !ValidInstallID(c.Value) {
		return "", false
	}
	return c.Value, true
}

// ClearCookie forgets the installation on the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
