package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/catalog"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/checkout"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/flash"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/middleware"
)

type checkoutPage struct {
	Addresses []checkout.Address
	Selected  string
	Items     []api.CartItem
	Summary   catalog.CartSummary
}

func (h *Handler) checkout(c *gin.Context) {
	inst := middleware.Installation(c)
	ctx := c.Request.Context()
	book := checkout.NewBook(inst.Store)

	cart, err := inst.API.Cart.Get(ctx)
	if err != nil {
		h.fail(c, err, MsgLoadFailed, "/cart")
		return
	}

	addresses, err := book.List(ctx)
	if err != nil {
		h.fail(c, err, MsgLoadFailed, "/cart")
		return
	}

	page := checkoutPage{
		Addresses: addresses,
		Items:     cart.Items,
		Summary:   catalog.CartTotal(cart.Items),
	}
	if addr, ok, err := book.Selected(ctx); err == nil && ok {
		page.Selected = addr.ID
	}

	h.render(c, http.StatusOK, "checkout.html", "Checkout", page)
}

func (h *Handler) addAddress(c *gin.Context) {
	var in checkout.AddressInput
	if err := c.ShouldBind(&in); err != nil {
		flash.Error(c, checkout.MsgAddressRequired)
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	inst := middleware.Installation(c)
	if _, err := checkout.NewBook(inst.Store).Add(c.Request.Context(), in); err != nil {
		h.fail(c, err, checkout.MsgAddressRequired, "/checkout")
		return
	}

	flash.Success(c, MsgAddressSaved)
	c.Redirect(http.StatusFound, "/checkout")
}

func (h *Handler) selectAddress(c *gin.Context) {
	inst := middleware.Installation(c)
	if err := checkout.NewBook(inst.Store).Select(c.Request.Context(), c.PostForm("address_id")); err != nil {
		h.fail(c, err, checkout.MsgUnknownAddress, "/checkout")
		return
	}

	flash.Success(c, MsgAddressSelected)
	c.Redirect(http.StatusFound, "/checkout")
}

func (h *Handler) removeAddress(c *gin.Context) {
	inst := middleware.Installation(c)
	if err := checkout.NewBook(inst.Store).Remove(c.Request.Context(), c.PostForm("address_id")); err != nil {
		h.fail(c, err, MsgRemoveFailed, "/checkout")
		return
	}

	flash.Success(c, MsgAddressRemoved)
	c.Redirect(http.StatusFound, "/checkout")
}

// pay renders a form that posts the gateway fields to the gateway.
func (h *Handler) pay(c *gin.Context) {
	inst := middleware.Installation(c)
	form, err := checkout.StartPayment(c.Request.Context(), checkout.NewBook(inst.Store), inst.API.Payments)
	if err != nil {
		h.fail(c, err, checkout.MsgPaymentFailed, "/checkout")
		return
	}

	logger.Info("payment initiated", map[string]any{
		"installation": inst.ID,
		"txnid":        form.Value("txnid"),
	})
	h.render(c, http.StatusOK, "pay.html", "Redirecting to payment", form)
}

// placeOrder creates an order directly, without the gateway.
func (h *Handler) placeOrder(c *gin.Context) {
	inst := middleware.Installation(c)
	ctx := c.Request.Context()

	addr, ok, err := checkout.NewBook(inst.Store).Selected(ctx)
	if err != nil {
		h.fail(c, err, MsgOrderFailed, "/checkout")
		return
	}
	if !ok {
		h.fail(c, apperr.New(apperr.KindValidation, "order", checkout.MsgSelectAddress), MsgOrderFailed, "/checkout")
		return
	}

	created, err := inst.API.Orders.Create(ctx, addr.ID)
	if err != nil {
		h.fail(c, err, MsgOrderFailed, "/checkout")
		return
	}

	logger.Info("order placed", map[string]any{
		"installation": inst.ID,
		"order_id":     created.OrderID,
		"total":        created.TotalAmount.String(),
	})
	flash.Success(c, MsgOrderPlaced)
	c.Redirect(http.StatusFound, "/orders")
}
