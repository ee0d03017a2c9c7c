package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// CRMStatus lee el estado de la integración CRM del usuario.
func (c *Client) CRMStatus(ctx context.Context) (*entity.CRMStatus, error) {
	var out entity.CRMStatus
	if err := c.do(ctx, http.MethodGet, "/hubspot/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CRMAuthURL obtiene la URL de autorización OAuth; la redirección la hace quien llama.
func (c *Client) CRMAuthURL(ctx context.Context) (string, error) {
	var out dto.CRMAuthURLResponse
	if err := c.do(ctx, http.MethodGet, "/hubspot/auth/url", nil, &out); err != nil {
		return "", err
	}
	return out.AuthURL, nil
}

// CRMDisconnect desconecta la integración.
func (c *Client) CRMDisconnect(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/hubspot/disconnect", nil, nil)
}

// CRMSyncCompanies sincroniza un lote de empresas y devuelve contadores.
func (c *Client) CRMSyncCompanies(ctx context.Context, companies []entity.CompanyData) (*entity.SyncResult, error) {
	var out entity.SyncResult
	in := dto.CRMSyncRequest{Companies: companies}
	if err := c.do(ctx, http.MethodPost, "/hubspot/sync/companies", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
