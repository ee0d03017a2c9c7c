package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/corpcrawl/internal/application/backend"
	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// TokenHandler maneja los tokens de API del usuario.
type TokenHandler struct {
	svc *backend.TokenService
}

// NewTokenHandler construye el handler de tokens.
func NewTokenHandler(svc *backend.TokenService) *TokenHandler {
	return &TokenHandler{svc: svc}
}

// List GET /api/api-tokens — nunca expone el secreto, sólo token_preview.
func (h *TokenHandler) List(c *fiber.Ctx) error {
	toks, err := h.svc.List(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if toks == nil {
		toks = []entity.APIToken{}
	}
	return c.JSON(toks)
}

// Create POST /api/api-tokens — única respuesta que lleva el secreto completo.
func (h *TokenHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tok, err := h.svc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tok)
}

// Revoke DELETE /api/api-tokens/:id
func (h *TokenHandler) Revoke(c *fiber.Ctx) error {
	if err := h.svc.Revoke(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "token revocado"})
}

// Toggle PUT /api/api-tokens/:id/toggle
func (h *TokenHandler) Toggle(c *fiber.Ctx) error {
	tok, err := h.svc.Toggle(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tok)
}
