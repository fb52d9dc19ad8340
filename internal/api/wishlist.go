package api

import (
	"context"
	"net/http"
	"strconv"
)

type WishlistService struct{ c *Client }

func (s *WishlistService) List(ctx context.Context) ([]WishlistItem, error) {
	var out []WishlistItem
	err := s.c.do(ctx, call{family: "wishlist", method: http.MethodGet, path: "/wishlist/"}, &out)
	return out, err
}

// Add is idempotent on the backend.
func (s *WishlistService) Add(ctx context.Context, productID int) error {
	body, err := jsonBody(map[string]int{"product_id": productID})
	if err != nil {
		return err
	}
	return s.c.do(ctx, call{family: "wishlist", method: http.MethodPost, path: "/wishlist/add/", body: body}, nil)
}

// Remove takes the product id, not the wishlist item id.
func (s *WishlistService) Remove(ctx context.Context, productID int) error {
	path := "/wishlist/remove/" + strconv.Itoa(productID) + "/"
	return s.c.do(ctx, call{family: "wishlist", method: http.MethodDelete, path: path}, nil)
}
