package storefront

import (
	"crypto/sha256"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/credentials"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/csrf"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/flash"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/middleware"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/nav"
)

// Options configure the cookies the storefront issues.
type Options struct {
	// Secret signs the flash and CSRF cookies.
	Secret string
	Secure bool
}

// Handler serves the storefront pages.
type Handler struct {
	pages       *pages
	credentials *credentials.Service
	guard       *middleware.Guard
	opts        Options
}

func NewHandler(creds *credentials.Service, guard *middleware.Guard, opts Options) *Handler {
	return &Handler{
		pages:       mustParsePages(),
		credentials: creds,
		guard:       guard,
		opts:        opts,
	}
}

// RegisterRoutes expects the installation middleware to run first.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(flash.Sessions(cookieKey(h.opts.Secret, "flash"), h.opts.Secure))
	r.Use(csrf.Protect(cookieKey(h.opts.Secret, "csrf"), h.opts.Secure))

	r.GET("/", h.home)
	r.GET("/product/:id", h.productDetail)
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/register", h.registerPage)
	r.POST("/register", h.register)
	r.GET("/seller/login", h.sellerLoginPage)
	r.POST("/seller/login", h.sellerLogin)
	r.GET("/seller/register", h.sellerRegisterPage)
	r.POST("/seller/register", h.sellerRegister)
	r.POST("/logout", h.logout)
	r.GET("/success", h.success)

	shop := r.Group("/", middleware.GinRequireAuth(h.guard))
	shop.POST("/product/:id/reviews", h.addReview)
	shop.GET("/cart", h.cart)
	shop.POST("/cart/add", h.addToCart)
	shop.POST("/cart/remove", h.removeFromCart)
	shop.POST("/cart/clear", h.clearCart)
	shop.GET("/wishlist", h.wishlist)
	shop.POST("/wishlist/add", h.addToWishlist)
	shop.POST("/wishlist/remove", h.removeFromWishlist)
	shop.POST("/wishlist/move", h.moveToCart)
	shop.GET("/checkout", h.checkout)
	shop.POST("/checkout/address", h.addAddress)
	shop.POST("/checkout/address/select", h.selectAddress)
	shop.POST("/checkout/address/remove", h.removeAddress)
	shop.POST("/checkout/pay", h.pay)
	shop.POST("/orders/create", h.placeOrder)
	shop.GET("/orders", h.orders)

	admin := shop.Group("/admin", middleware.GinRequireStaff(h.guard))
	admin.GET("", h.dashboard)
	admin.POST("/products", h.createProduct)
	admin.POST("/products/:id", h.updateProduct)
	admin.POST("/products/:id/delete", h.deleteProduct)

	r.NoRoute(h.notFound)
}

// view is the data every page template receives.
type view struct {
	Title string
	Menu  nav.Menu
	Flash *flash.Message
	CSRF  string
	Data  any
}

func (h *Handler) render(c *gin.Context, status int, page, title string, data any) {
	inst := middleware.Installation(c)
	v := view{
		Title: title,
		Menu:  nav.Build(inst.Controller.Session(), c.Query("q")),
		CSRF:  csrf.Token(c),
		Data:  data,
	}
	if m, ok := flash.Pop(c); ok {
		v.Flash = &m
	}

	tmpl, ok := h.pages.get(page)
	if !ok {
		logger.Error("unknown page template", map[string]any{"page": page})
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Render(status, render.HTML{Template: tmpl, Name: "layout", Data: v})
}

// fail reports err to the user and redirects. Backend refusals keep the
// session; only an explicit logout ends it.
func (h *Handler) fail(c *gin.Context, err error, fallback, redirect string) {
	logger.Warn("storefront action failed", map[string]any{
		"path":   c.Request.URL.Path,
		"status": api.Status(err),
		"error":  err.Error(),
	})

	flash.Error(c, failureText(err, fallback))
	c.Redirect(http.StatusFound, redirect)
}

// failureText prefers a classified message, then the backend's own text for
// client errors, then fallback.
func failureText(err error, fallback string) string {
	if msg := apperr.UserMessage(err, ""); msg != "" {
		return msg
	}
	if status := api.Status(err); status >= 400 && status < 500 {
		if msg := api.ServerMessage(err); msg != "" {
			return msg
		}
	}
	return fallback
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "notfound.html", "Page not found", nil)
}

// back returns the local page the request came from, or fallback.
func back(c *gin.Context, fallback string) string {
	if to := c.PostForm("next"); isLocal(to) {
		return to
	}
	return fallback
}

func cookieKey(secret, purpose string) []byte {
	sum := sha256.Sum256([]byte(purpose + ":" + secret))
	return sum[:]
}

func isLocal(p string) bool {
	return len(p) > 0 && p[0] == '/' && (len(p) == 1 || (p[1] != '/' && p[1] != '\\'))
}

func formInt(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.PostForm(name))
	return n, err == nil && n > 0
}

func paramInt(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	return n, err == nil && n > 0
}
