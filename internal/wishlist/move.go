// Package wishlist holds flows that span the wishlist and the cart.
package wishlist

import (
	"context"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
)

const (
	MsgMoved         = "Item moved to Cart"
	MsgMoveFailed    = "Error moving item to cart"
	MsgMovePartially = "Item added to cart but it is still in your wishlist"
)

type CartAdder interface {
	Add(ctx context.Context, productID, quantity int) (*api.CartLine, error)
}

type Remover interface {
	Remove(ctx context.Context, productID int) error
}

// MoveResult reports which of the two steps took effect.
type MoveResult struct {
	Added   bool
	Removed bool
}

// MoveToCart adds one unit to the cart, then removes the product from the
// wishlist. The steps run in order and a failed removal does not undo the
// cart add.
func MoveToCart(ctx context.Context, cart CartAdder, wl Remover, productID int) (MoveResult, error) {
	var res MoveResult

	if _, err := cart.Add(ctx, productID, 1); err != nil {
		return res, apperr.Wrap(apperr.KindNetworkOrServer, "move_to_cart", MsgMoveFailed, err)
	}
	res.Added = true

	if err := wl.Remove(ctx, productID); err != nil {
		logger.Warn("wishlist removal failed after cart add", map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
		return res, apperr.Wrap(apperr.KindNetworkOrServer, "move_to_cart", MsgMovePartially, err)
	}
	res.Removed = true
	return res, nil
}
