package api

import (
	"context"
	"net/http"
)

type ReviewService struct{ c *Client }

func (s *ReviewService) Add(ctx context.Context, r NewReview) error {
	body, err := jsonBody(r)
	if err != nil {
		return err
	}
	return s.c.do(ctx, call{family: "reviews", method: http.MethodPost, path: "/reviews/add/", body: body}, nil)
}

func (s *ReviewService) ByProduct(ctx context.Context, productID int) ([]Review, error) {
	var out []Review
	err := s.c.do(ctx, call{family: "reviews", method: http.MethodGet, path: productPath(productID) + "reviews/"}, &out)
	return out, err
}
