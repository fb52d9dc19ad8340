package checkout

import (
	"context"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
)

const (
	MsgSelectAddress = "Please select a delivery address!"
	MsgPaymentFailed = "Failed to start payment"
)

// Initiator starts a gateway payment for the current cart.
type Initiator interface {
	Initiate(ctx context.Context, addressID string) (*api.PaymentForm, error)
}

// StartPayment returns the redirect form for the selected address.
func StartPayment(ctx context.Context, book *Book, payments Initiator) (*api.PaymentForm, error) {
	addr, ok, err := book.Selected(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNetworkOrServer, "payment", MsgPaymentFailed, err)
	}
	if !ok {
		return nil, apperr.New(apperr.KindValidation, "payment", MsgSelectAddress)
	}

	form, err := payments.Initiate(ctx, addr.ID)
	if err != nil {
		msg := api.ServerMessage(err)
		if msg == "" {
			msg = MsgPaymentFailed
		}
		return nil, apperr.Wrap(apperr.KindNetworkOrServer, "payment", msg, err)
	}
	return form, nil
}
