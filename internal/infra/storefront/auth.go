package storefront

import (
	"context"
	"net/http"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

func (c *Client) Login(ctx context.Context, email, password string) (*shared.AuthSession, error) {
	var resp authResponse
	if err := c.do(ctx, "auth.login", http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return toAuthSession(resp)
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*shared.AuthUser, error) {
	var resp userPayload
	req := registerRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, "auth.register", http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return toAuthUser(resp)
}

func (c *Client) Verify(ctx context.Context, email, code string) (*shared.AuthSession, error) {
	var resp authResponse
	if err := c.do(ctx, "auth.verify", http.MethodPost, "/auth/verify", verifyRequest{Email: email, Code: code}, &resp); err != nil {
		return nil, err
	}
	return toAuthSession(resp)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "auth.logout", http.MethodPost, "/auth/logout", nil, nil)
}

func toAuthSession(resp authResponse) (*shared.AuthSession, error) {
	if resp.Token == "" {
		return nil, infra.NewUpstreamError(infra.KindUpstreamFailure, "auth response carried no token", nil)
	}
	u, err := toAuthUser(resp.User)
	if err != nil {
		return nil, err
	}
	return &shared.AuthSession{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
		User:      *u,
	}, nil
}

func toAuthUser(p userPayload) (*shared.AuthUser, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, infra.NewUpstreamError(infra.KindUpstreamFailure, "auth response carried an invalid user id", err)
	}
	return &shared.AuthUser{
		ID:       id,
		Email:    p.Email,
		Name:     p.Name,
		Role:     p.Role,
		Verified: p.Verified,
	}, nil
}
