package credentials

import (
	"context"
	"net/http"
	"strings"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
)

const (
	MsgRegisterFailed       = "Registration Failed. Try a different username."
	MsgSellerRegisterFailed = "Registration Failed. Check your Secret Key."
	MsgMissingFields        = "All fields are required."
)

// Service creates accounts on the backend. It never creates a session;
// a new account signs in through the login flow.
type Service struct {
	auth *api.AuthService
}

func NewService(client *api.Client) *Service {
	return &Service{auth: client.Auth}
}

// Register creates a shopper account.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return apperr.New(apperr.KindValidation, "register", MsgMissingFields)
	}

	_, err := s.auth.Register(ctx, api.Registration{Username: username, Email: email, Password: password})
	return classify("register", err, MsgRegisterFailed)
}

// RegisterSeller creates a staff account; the backend checks secretKey.
func (s *Service) RegisterSeller(ctx context.Context, username, password, secretKey string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || secretKey == "" {
		return apperr.New(apperr.KindValidation, "register_seller", MsgMissingFields)
	}

	_, err := s.auth.AdminRegister(ctx, api.SellerRegistration{
		Username:  username,
		Password:  password,
		SecretKey: secretKey,
	})
	return classify("register_seller", err, MsgSellerRegisterFailed)
}

// classify maps a rejection to a validation failure carrying the server's
// text when it sent one. Transport and 5xx failures stay network failures.
func classify(op string, err error, fallback string) error {
	if err == nil {
		return nil
	}
	status := api.Status(err)
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		msg := api.ServerMessage(err)
		if msg == "" {
			msg = fallback
		}
		return apperr.Wrap(apperr.KindValidation, op, msg, err)
	}
	return apperr.Wrap(apperr.KindNetworkOrServer, op, fallback, err)
}
