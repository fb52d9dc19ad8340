package storefront

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/catalog"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/flash"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/middleware"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/wishlist"
)

type homePage struct {
	Query      string
	Products   []api.Product
	Categories []string
	MaxPrice   float64
	Filter     catalog.Filter
	Error      string
}

// home lists products. The search term goes to the backend; the sidebar
// filter runs over what came back.
func (h *Handler) home(c *gin.Context) {
	inst := middleware.Installation(c)
	q := strings.TrimSpace(c.Query("q"))

	page := homePage{
		Query: q,
		Filter: catalog.Filter{
			Categories: c.QueryArray("category"),
			MaxPrice:   queryFloat(c, "max_price"),
			MinRating:  queryFloat(c, "min_rating"),
		},
	}

	products, err := inst.API.Products.List(c.Request.Context(), api.ProductQuery{Q: q})
	if err != nil {
		logger.Warn("product list failed", map[string]any{"error": err.Error()})
		page.Error = MsgLoadFailed
		h.render(c, http.StatusOK, "home.html", "Shop", page)
		return
	}

	page.Categories = catalog.Categories(products)
	page.MaxPrice = catalog.MaxPrice(products)
	page.Products = page.Filter.Apply(products)
	h.render(c, http.StatusOK, "home.html", "Shop", page)
}

type productPage struct {
	Product *api.Product
	Reviews []api.Review
}

func (h *Handler) productDetail(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		h.notFound(c)
		return
	}

	inst := middleware.Installation(c)
	ctx := c.Request.Context()

	product, err := inst.API.Products.Get(ctx, id)
	if err != nil {
		if api.Status(err) == http.StatusNotFound {
			h.notFound(c)
			return
		}
		h.fail(c, err, MsgLoadFailed, "/")
		return
	}

	// reviews are optional decoration
	reviews, err := inst.API.Reviews.ByProduct(ctx, id)
	if err != nil {
		logger.Warn("reviews unavailable", map[string]any{"product_id": id, "error": err.Error()})
	}

	h.render(c, http.StatusOK, "product.html", product.Title, productPage{Product: product, Reviews: reviews})
}

type reviewForm struct {
	Rating int    `form:"rating"`
	Title  string `form:"title"`
	Body   string `form:"body"`
}

func (h *Handler) addReview(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	redirect := "/product/" + strconv.Itoa(id)

	var req reviewForm
	if err := c.ShouldBind(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
		flash.Error(c, MsgReviewFailed)
		c.Redirect(http.StatusFound, redirect)
		return
	}

	inst := middleware.Installation(c)
	err := inst.API.Reviews.Add(c.Request.Context(), api.NewReview{
		ProductID: id,
		Rating:    req.Rating,
		Title:     strings.TrimSpace(req.Title),
		Body:      strings.TrimSpace(req.Body),
	})
	if err != nil {
		h.fail(c, err, MsgReviewFailed, redirect)
		return
	}

	flash.Success(c, MsgReviewAdded)
	c.Redirect(http.StatusFound, redirect)
}

type cartPage struct {
	Items   []api.CartItem
	Summary catalog.CartSummary
}

func (h *Handler) cart(c *gin.Context) {
	inst := middleware.Installation(c)
	cart, err := inst.API.Cart.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err, MsgLoadFailed, "/")
		return
	}
	h.render(c, http.StatusOK, "cart.html", "Your Cart", cartPage{
		Items:   cart.Items,
		Summary: catalog.CartTotal(cart.Items),
	})
}

func (h *Handler) addToCart(c *gin.Context) {
	redirect := back(c, "/")
	productID, ok := formInt(c, "product_id")
	if !ok {
		flash.Error(c, MsgBadRequest)
		c.Redirect(http.StatusFound, redirect)
		return
	}
	qty, ok := formInt(c, "quantity")
	if !ok {
		qty = 1
	}

	inst := middleware.Installation(c)
	if _, err := inst.API.Cart.Add(c.Request.Context(), productID, qty); err != nil {
		h.fail(c, err, MsgAddToCartFailed, redirect)
		return
	}

	flash.Success(c, MsgAddedToCart)
	c.Redirect(http.StatusFound, redirect)
}

func (h *Handler) removeFromCart(c *gin.Context) {
	itemID, ok := formInt(c, "item_id")
	if !ok {
		flash.Error(c, MsgBadRequest)
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	inst := middleware.Installation(c)
	if err := inst.API.Cart.Remove(c.Request.Context(), itemID); err != nil {
		h.fail(c, err, MsgRemoveFailed, "/cart")
		return
	}

	flash.Success(c, MsgCartItemRemoved)
	c.Redirect(http.StatusFound, "/cart")
}

func (h *Handler) clearCart(c *gin.Context) {
	inst := middleware.Installation(c)
	if err := inst.API.Cart.Clear(c.Request.Context()); err != nil {
		h.fail(c, err, MsgRemoveFailed, "/cart")
		return
	}

	flash.Success(c, MsgCartCleared)
	c.Redirect(http.StatusFound, "/cart")
}

func (h *Handler) wishlist(c *gin.Context) {
	inst := middleware.Installation(c)
	items, err := inst.API.Wishlist.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, MsgLoadFailed, "/")
		return
	}
	h.render(c, http.StatusOK, "wishlist.html", "Your Wishlist", items)
}

func (h *Handler) addToWishlist(c *gin.Context) {
	redirect := back(c, "/")
	productID, ok := formInt(c, "product_id")
	if !ok {
		flash.Error(c, MsgBadRequest)
		c.Redirect(http.StatusFound, redirect)
		return
	}

	inst := middleware.Installation(c)
	if err := inst.API.Wishlist.Add(c.Request.Context(), productID); err != nil {
		h.fail(c, err, MsgAddToWishlistFailed, redirect)
		return
	}

	flash.Success(c, MsgAddedToWishlist)
	c.Redirect(http.StatusFound, redirect)
}

func (h *Handler) removeFromWishlist(c *gin.Context) {
	productID, ok := formInt(c, "product_id")
	if !ok {
		flash.Error(c, MsgBadRequest)
		c.Redirect(http.StatusFound, "/wishlist")
		return
	}

	inst := middleware.Installation(c)
	if err := inst.API.Wishlist.Remove(c.Request.Context(), productID); err != nil {
		h.fail(c, err, MsgRemoveFailed, "/wishlist")
		return
	}

	flash.Success(c, MsgWishlistRemoved)
	c.Redirect(http.StatusFound, "/wishlist")
}

func (h *Handler) moveToCart(c *gin.Context) {
	productID, ok := formInt(c, "product_id")
	if !ok {
		flash.Error(c, MsgBadRequest)
		c.Redirect(http.StatusFound, "/wishlist")
		return
	}

	inst := middleware.Installation(c)
	res, err := wishlist.MoveToCart(c.Request.Context(), inst.API.Cart, inst.API.Wishlist, productID)
	if err != nil {
		if res.Added {
			// the cart add stands; only tell the user what is left over
			flash.Error(c, apperr.UserMessage(err, wishlist.MsgMovePartially))
			c.Redirect(http.StatusFound, "/wishlist")
			return
		}
		h.fail(c, err, wishlist.MsgMoveFailed, "/wishlist")
		return
	}

	flash.Success(c, wishlist.MsgMoved)
	c.Redirect(http.StatusFound, "/wishlist")
}

func (h *Handler) orders(c *gin.Context) {
	inst := middleware.Installation(c)
	orders, err := inst.API.Orders.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, MsgLoadFailed, "/")
		return
	}
	h.render(c, http.StatusOK, "orders.html", "My Orders", orders)
}

func queryFloat(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
