package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// ListTokens lista los tokens del usuario; nunca incluye el secreto, sólo token_preview.
func (c *Client) ListTokens(ctx context.Context) ([]entity.APIToken, error) {
	var out []entity.APIToken
	if err := c.do(ctx, http.MethodGet, "/api-tokens", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateToken crea un token. La respuesta es la única vez que el secreto
// completo viaja; quien llama decide mostrarlo y no debe retenerlo.
func (c *Client) CreateToken(ctx context.Context, name string, scopes []string, expiresInDays int) (*entity.CreatedAPIToken, error) {
	var out entity.CreatedAPIToken
	in := dto.CreateTokenRequest{Name: name, Scopes: scopes, ExpiresInDays: expiresInDays}
	if err := c.do(ctx, http.MethodPost, "/api-tokens", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeToken elimina un token por id.
func (c *Client) RevokeToken(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api-tokens/"+url.PathEscape(id), nil, nil)
}

// ToggleToken alterna el estado activo de un token.
func (c *Client) ToggleToken(ctx context.Context, id string) (*entity.APIToken, error) {
	var out entity.APIToken
	if err := c.do(ctx, http.MethodPut, "/api-tokens/"+url.PathEscape(id)+"/toggle", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
