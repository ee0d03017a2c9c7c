package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// Register da de alta un usuario y devuelve la credencial emitida junto a la identidad.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (string, *entity.User, error) {
	var out dto.TokenResponse
	in := dto.RegisterRequest{Email: email, Password: password, FullName: fullName}
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return "", nil, err
	}
	return out.AccessToken, &out.User, nil
}

// Login autentica con email y password.
func (c *Client) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	var out dto.TokenResponse
	in := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return "", nil, err
	}
	return out.AccessToken, &out.User, nil
}

// Me recupera la identidad autoritativa del usuario autenticado.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
