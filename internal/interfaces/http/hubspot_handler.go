package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/corpcrawl/internal/application/backend"
	"github.com/jhoicas/corpcrawl/internal/application/dto"
)

// HubSpotHandler frontera CRM simulada del backend de pruebas.
type HubSpotHandler struct {
	svc *backend.CRMService
}

// NewHubSpotHandler construye el handler de HubSpot.
func NewHubSpotHandler(svc *backend.CRMService) *HubSpotHandler {
	return &HubSpotHandler{svc: svc}
}

// Status GET /api/hubspot/status
func (h *HubSpotHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.svc.Status(GetUserID(c)))
}

// AuthURL GET /api/hubspot/auth/url
func (h *HubSpotHandler) AuthURL(c *fiber.Ctx) error {
	return c.JSON(dto.CRMAuthURLResponse{AuthURL: h.svc.AuthURL(GetUserID(c))})
}

// Disconnect POST /api/hubspot/disconnect
func (h *HubSpotHandler) Disconnect(c *fiber.Ctx) error {
	h.svc.Disconnect(GetUserID(c))
	return c.JSON(dto.MessageResponse{Message: "integración desconectada"})
}

// SyncCompanies POST /api/hubspot/sync/companies
func (h *HubSpotHandler) SyncCompanies(c *fiber.Ctx) error {
	var in dto.CRMSyncRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Companies) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "companies no puede estar vacío"})
	}
	result, err := h.svc.SyncCompanies(GetUserID(c), in.Companies)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
