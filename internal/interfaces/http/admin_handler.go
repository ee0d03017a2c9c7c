package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/corpcrawl/internal/application/backend"
	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// AdminHandler operaciones de superadmin: usuarios, planes y ledger central.
type AdminHandler struct {
	admin *backend.AdminService
	crawl *backend.CrawlService
}

// NewAdminHandler construye el handler de admin.
func NewAdminHandler(admin *backend.AdminService, crawl *backend.CrawlService) *AdminHandler {
	return &AdminHandler{admin: admin, crawl: crawl}
}

// Users GET /api/admin/users
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.admin.Users()
	if err != nil {
		return respondError(c, err)
	}
	if users == nil {
		users = []entity.User{}
	}
	return c.JSON(users)
}

// SetCredits PUT /api/admin/users/:id/credits
func (h *AdminHandler) SetCredits(c *fiber.Ctx) error {
	var in dto.CreditsUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.admin.SetCredits(c.Params("id"), in.Credits); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "créditos actualizados"})
}

// SetStatus PUT /api/admin/users/:id/status
func (h *AdminHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.StatusUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.admin.SetStatus(c.Params("id"), in.IsActive); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}

// SetPlan PUT /api/admin/users/:id/plan
func (h *AdminHandler) SetPlan(c *fiber.Ctx) error {
	var in dto.PlanAssign
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.admin.SetPlan(c.Params("id"), in.CurrentPlan); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "plan asignado"})
}

// CreatePlan POST /api/admin/plans
func (h *AdminHandler) CreatePlan(c *fiber.Ctx) error {
	var in dto.PlanCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Price == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y price son requeridos"})
	}
	p, err := h.admin.CreatePlan(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdatePlan PUT /api/admin/plans/:id
func (h *AdminHandler) UpdatePlan(c *fiber.Ctx) error {
	var patch repository.PlanPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.admin.UpdatePlan(c.Params("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// DeletePlan DELETE /api/admin/plans/:id
func (h *AdminHandler) DeletePlan(c *fiber.Ctx) error {
	if err := h.admin.DeletePlan(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "plan eliminado"})
}

// CentralLedger GET /api/admin/central-ledger?limit=N
func (h *AdminHandler) CentralLedger(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	out, err := h.crawl.CentralLedger(limit)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		out = []entity.CompanyData{}
	}
	return c.JSON(out)
}
