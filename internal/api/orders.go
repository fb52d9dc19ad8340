package api

import (
	"context"
	"net/http"
)

type OrderService struct{ c *Client }

// Create places an order from the current cart.
func (s *OrderService) Create(ctx context.Context, addressID string) (*OrderCreated, error) {
	body, err := jsonBody(map[string]string{"address_id": addressID})
	if err != nil {
		return nil, err
	}
	var out OrderCreated
	if err := s.c.do(ctx, call{family: "orders", method: http.MethodPost, path: "/orders/create/", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the order history, newest first.
func (s *OrderService) List(ctx context.Context) ([]Order, error) {
	var out []Order
	err := s.c.do(ctx, call{family: "orders", method: http.MethodGet, path: "/orders/"}, &out)
	return out, err
}
