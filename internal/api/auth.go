package api

import (
	"context"
	"net/http"
)

type AuthService struct{ c *Client }

// Login authenticates a shopper.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	return s.login(ctx, "/auth/login/", creds)
}

// AdminLogin authenticates a seller.
func (s *AuthService) AdminLogin(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	return s.login(ctx, "/auth/admin/login/", creds)
}

func (s *AuthService) login(ctx context.Context, path string, creds Credentials) (*LoginResponse, error) {
	body, err := jsonBody(creds)
	if err != nil {
		return nil, err
	}
	var out LoginResponse
	if err := s.c.do(ctx, call{family: "auth", method: http.MethodPost, path: path, body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Register(ctx context.Context, reg Registration) (*RegisterResponse, error) {
	body, err := jsonBody(reg)
	if err != nil {
		return nil, err
	}
	var out RegisterResponse
	if err := s.c.do(ctx, call{family: "auth", method: http.MethodPost, path: "/auth/register/", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminRegister creates a seller account; the backend checks the shared secret.
func (s *AuthService) AdminRegister(ctx context.Context, reg SellerRegistration) (*RegisterResponse, error) {
	form := newMultipart()
	form.field("username", reg.Username)
	form.field("password", reg.Password)
	form.field("secret_key", reg.SecretKey)
	body, err := form.body()
	if err != nil {
		return nil, err
	}
	var out RegisterResponse
	if err := s.c.do(ctx, call{family: "auth", method: http.MethodPost, path: "/auth/admin/register/", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
