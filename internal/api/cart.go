package api

import (
	"context"
	"net/http"
)

type CartService struct{ c *Client }

func (s *CartService) Get(ctx context.Context) (*Cart, error) {
	var out Cart
	if err := s.c.do(ctx, call{family: "cart", method: http.MethodGet, path: "/cart/"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Add increases the quantity when the product is already in the cart.
func (s *CartService) Add(ctx context.Context, productID, quantity int) (*CartLine, error) {
	body, err := jsonBody(map[string]int{"product_id": productID, "quantity": quantity})
	if err != nil {
		return nil, err
	}
	var out CartLine
	if err := s.c.do(ctx, call{family: "cart", method: http.MethodPost, path: "/cart/", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CartService) Remove(ctx context.Context, itemID int) error {
	body, err := jsonBody(map[string]int{"item_id": itemID})
	if err != nil {
		return err
	}
	return s.c.do(ctx, call{family: "cart", method: http.MethodDelete, path: "/cart/", body: body}, nil)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	return s.c.do(ctx, call{family: "cart", method: http.MethodDelete, path: "/cart/"}, nil)
}
