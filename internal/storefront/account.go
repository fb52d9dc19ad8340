package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider/seller"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/flash"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/middleware"
)

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type registerForm struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type sellerRegisterForm struct {
	Username  string `form:"username"`
	Password  string `form:"password"`
	SecretKey string `form:"secret_key"`
}

// accountPage is the data behind the login and register forms.
type accountPage struct {
	Action   string
	Seller   bool
	Username string
	Email    string
}

func (h *Handler) loginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", "Login", accountPage{Action: "/login"})
}

func (h *Handler) sellerLoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", "Seller Login", accountPage{Action: "/seller/login", Seller: true})
}

func (h *Handler) login(c *gin.Context) {
	h.doLogin(c, "", "/login")
}

func (h *Handler) sellerLogin(c *gin.Context) {
	h.doLogin(c, seller.Name, "/seller/login")
}

// doLogin runs the whole strategy chain, or only the named strategy.
func (h *Handler) doLogin(c *gin.Context, strategy, retry string) {
	var req loginForm
	if err := c.ShouldBind(&req); err != nil {
		flash.Error(c, auth.MsgInvalidCredentials)
		c.Redirect(http.StatusFound, retry)
		return
	}

	ctrl := middleware.Installation(c).Controller
	ctx := c.Request.Context()

	var (
		landing string
		err     error
	)
	if strategy == "" {
		landing, err = ctrl.Login(ctx, req.Username, req.Password)
	} else {
		landing, err = ctrl.LoginWith(ctx, strategy, req.Username, req.Password)
	}
	if err != nil {
		flash.Error(c, apperr.UserMessage(err, auth.MsgInvalidCredentials))
		c.Redirect(http.StatusFound, retry)
		return
	}

	c.Redirect(http.StatusFound, landing)
}

func (h *Handler) logout(c *gin.Context) {
	ctrl := middleware.Installation(c).Controller
	to, err := ctrl.Logout(c.Request.Context())
	if err != nil {
		logger.Error("logout failed", map[string]any{"error": err.Error()})
		flash.Error(c, apperr.UserMessage(err, auth.MsgStoreUnavailable))
		c.Redirect(http.StatusFound, auth.RouteHome)
		return
	}
	flash.Success(c, MsgLoggedOut)
	c.Redirect(http.StatusFound, to)
}

func (h *Handler) registerPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", "Sign Up", accountPage{Action: "/register"})
}

func (h *Handler) sellerRegisterPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", "Become a Seller", accountPage{Action: "/seller/register", Seller: true})
}

func (h *Handler) register(c *gin.Context) {
	var req registerForm
	if err := c.ShouldBind(&req); err != nil {
		flash.Error(c, MsgBadRequest)
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if err := h.credentials.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		flash.Error(c, apperr.UserMessage(err, MsgBadRequest))
		c.Redirect(http.StatusFound, "/register")
		return
	}

	flash.Success(c, MsgAccountCreated)
	c.Redirect(http.StatusFound, auth.RouteLogin)
}

func (h *Handler) sellerRegister(c *gin.Context) {
	var req sellerRegisterForm
	if err := c.ShouldBind(&req); err != nil {
		flash.Error(c, MsgBadRequest)
		c.Redirect(http.StatusFound, "/seller/register")
		return
	}

	err := h.credentials.RegisterSeller(c.Request.Context(), req.Username, req.Password, req.SecretKey)
	if err != nil {
		flash.Error(c, apperr.UserMessage(err, MsgBadRequest))
		c.Redirect(http.StatusFound, "/seller/register")
		return
	}

	flash.Success(c, MsgSellerAccountCreated)
	c.Redirect(http.StatusFound, "/seller/login")
}

// success is where the payment gateway returns the shopper.
func (h *Handler) success(c *gin.Context) {
	h.render(c, http.StatusOK, "success.html", "Payment complete", nil)
}
