package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// Users lista todos los usuarios (superadmin).
func (c *Client) Users(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetUserCredits fija el saldo de un usuario (superadmin).
func (c *Client) SetUserCredits(ctx context.Context, userID string, credits int) error {
	in := dto.CreditsUpdate{Credits: credits}
	return c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(userID)+"/credits", in, nil)
}

// SetUserStatus activa o desactiva un usuario (superadmin).
func (c *Client) SetUserStatus(ctx context.Context, userID string, active bool) error {
	in := dto.StatusUpdate{IsActive: active}
	return c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(userID)+"/status", in, nil)
}

// SetUserPlan asigna un plan a un usuario (superadmin).
func (c *Client) SetUserPlan(ctx context.Context, userID, plan string) error {
	in := dto.PlanAssign{CurrentPlan: plan}
	return c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(userID)+"/plan", in, nil)
}

// CreatePlan alta de plan de precios (superadmin).
func (c *Client) CreatePlan(ctx context.Context, p entity.Plan) (*entity.Plan, error) {
	var out entity.Plan
	in := dto.PlanCreateRequest{Name: p.Name, Price: p.Price.String(), Credits: p.Credits, IsActive: p.IsActive}
	if err := c.do(ctx, http.MethodPost, "/admin/plans", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePlan actualización parcial de un plan (superadmin).
func (c *Client) UpdatePlan(ctx context.Context, id string, patch repository.PlanPatch) (*entity.Plan, error) {
	var out entity.Plan
	if err := c.do(ctx, http.MethodPut, "/admin/plans/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePlan borrado de plan (superadmin).
func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/plans/"+url.PathEscape(id), nil, nil)
}

// CentralLedger lectura transversal del ledger de empresas (superadmin).
func (c *Client) CentralLedger(ctx context.Context, limit int) ([]entity.CompanyData, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.CompanyData
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/central-ledger?limit=%d", limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
