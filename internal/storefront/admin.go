package storefront

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/flash"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/middleware"
)

const adminRoute = "/admin"

type productForm struct {
	Title        string `form:"title"`
	Brand        string `form:"brand"`
	Description  string `form:"description"`
	Price        string `form:"price"`
	Stock        string `form:"stock"`
	CategoryName string `form:"category_name"`
	ImageURLs    string `form:"image_urls"`
}

type dashboardPage struct {
	Products []api.Product
}

func (h *Handler) dashboard(c *gin.Context) {
	inst := middleware.Installation(c)
	products, err := inst.API.Products.Mine(c.Request.Context())
	if err != nil {
		h.fail(c, err, MsgLoadFailed, "/")
		return
	}
	h.render(c, http.StatusOK, "admin.html", "Admin Dashboard", dashboardPage{Products: products})
}

// bindProduct reads the seller form, including an optional image file.
// The returned cleanup closes the uploaded file.
func bindProduct(c *gin.Context) (api.ProductForm, func(), error) {
	noop := func() {}

	var req productForm
	if err := c.ShouldBind(&req); err != nil {
		return api.ProductForm{}, noop, err
	}

	form := api.ProductForm{
		Title:        strings.TrimSpace(req.Title),
		Brand:        strings.TrimSpace(req.Brand),
		Description:  strings.TrimSpace(req.Description),
		Price:        strings.TrimSpace(req.Price),
		Stock:        strings.TrimSpace(req.Stock),
		CategoryName: strings.TrimSpace(req.CategoryName),
		ImageURLs:    strings.TrimSpace(req.ImageURLs),
	}

	header, err := c.FormFile("image")
	if err != nil {
		// no file attached
		return form, noop, nil
	}
	f, err := header.Open()
	if err != nil {
		return api.ProductForm{}, noop, err
	}
	form.Image = &api.Upload{Filename: header.Filename, Content: f}
	return form, func() { _ = f.Close() }, nil
}

func (h *Handler) createProduct(c *gin.Context) {
	form, done, err := bindProduct(c)
	defer done()
	if err != nil || form.Title == "" || form.Price == "" {
		flash.Error(c, MsgProductCreateFailed)
		c.Redirect(http.StatusFound, adminRoute)
		return
	}

	inst := middleware.Installation(c)
	product, err := inst.API.Products.Create(c.Request.Context(), form)
	if err != nil {
		h.fail(c, err, MsgProductCreateFailed, adminRoute)
		return
	}

	logger.Info("product created", map[string]any{
		"product_id": product.ID,
		"seller":     inst.Controller.Session().Username(),
	})
	flash.Success(c, MsgProductCreated)
	c.Redirect(http.StatusFound, adminRoute)
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		h.notFound(c)
		return
	}

	form, done, err := bindProduct(c)
	defer done()
	if err != nil {
		flash.Error(c, MsgProductUpdateFailed)
		c.Redirect(http.StatusFound, adminRoute)
		return
	}

	inst := middleware.Installation(c)
	if _, err := inst.API.Products.Update(c.Request.Context(), id, form); err != nil {
		h.fail(c, err, MsgProductUpdateFailed, adminRoute)
		return
	}

	flash.Success(c, MsgProductUpdated)
	c.Redirect(http.StatusFound, adminRoute)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		h.notFound(c)
		return
	}

	inst := middleware.Installation(c)
	if err := inst.API.Products.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, MsgDeleteFailed, adminRoute)
		return
	}

	logger.Info("product deleted", map[string]any{"product_id": strconv.Itoa(id)})
	flash.Success(c, MsgProductDeleted)
	c.Redirect(http.StatusFound, adminRoute)
}
