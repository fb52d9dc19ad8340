package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/go-querystring/query"
)

// ProductQuery narrows the product list on the backend.
type ProductQuery struct {
	Q        string   `url:"q,omitempty"`
	Category string   `url:"category,omitempty"`
	MinPrice *float64 `url:"min_price,omitempty"`
	MaxPrice *float64 `url:"max_price,omitempty"`
}

// Upload is an image file attached to a product form.
type Upload struct {
	Filename string
	Content  io.Reader
}

// ProductForm is what a seller submits to create or edit a product.
type ProductForm struct {
	Title        string
	Brand        string
	Description  string
	Price        string
	Stock        string
	CategoryName string
	ImageURLs    string
	Image        *Upload
}

func (f ProductForm) encode() (*requestBody, error) {
	form := newMultipart()
	form.field("title", f.Title)
	form.field("brand", f.Brand)
	form.field("description", f.Description)
	form.field("price", f.Price)
	form.field("stock", f.Stock)
	form.field("category_name", f.CategoryName)
	if f.ImageURLs != "" {
		form.field("image_urls", f.ImageURLs)
	}
	if f.Image != nil && f.Image.Content != nil {
		form.file("images", f.Image.Filename, f.Image.Content)
	}
	return form.body()
}

type ProductService struct{ c *Client }

func (s *ProductService) List(ctx context.Context, q ProductQuery) ([]Product, error) {
	values, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("api: encode product query: %w", err)
	}
	var out []Product
	err = s.c.do(ctx, call{family: "products", method: http.MethodGet, path: "/products/", query: values}, &out)
	return out, err
}

func (s *ProductService) Get(ctx context.Context, id int) (*Product, error) {
	var out Product
	if err := s.c.do(ctx, call{family: "products", method: http.MethodGet, path: productPath(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine lists the products the signed-in seller created.
func (s *ProductService) Mine(ctx context.Context) ([]Product, error) {
	var out []Product
	err := s.c.do(ctx, call{family: "products", method: http.MethodGet, path: "/products/my/"}, &out)
	return out, err
}

func (s *ProductService) Create(ctx context.Context, form ProductForm) (*Product, error) {
	body, err := form.encode()
	if err != nil {
		return nil, err
	}
	var out Product
	if err := s.c.do(ctx, call{family: "products", method: http.MethodPost, path: "/products/", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductService) Update(ctx context.Context, id int, form ProductForm) (*Product, error) {
	body, err := form.encode()
	if err != nil {
		return nil, err
	}
	var out Product
	if err := s.c.do(ctx, call{family: "products", method: http.MethodPut, path: productPath(id), body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, call{family: "products", method: http.MethodDelete, path: productPath(id)}, nil)
}

func productPath(id int) string {
	return "/products/" + strconv.Itoa(id) + "/"
}
