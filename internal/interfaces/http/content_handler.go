package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/corpcrawl/internal/application/backend"
	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// ContentHandler maneja blogs, FAQs y planes públicos.
type ContentHandler struct {
	content *backend.ContentService
	admin   *backend.AdminService
}

// NewContentHandler construye el handler de contenido.
func NewContentHandler(content *backend.ContentService, admin *backend.AdminService) *ContentHandler {
	return &ContentHandler{content: content, admin: admin}
}

// Blogs GET /api/content/blogs — sólo publicados.
func (h *ContentHandler) Blogs(c *fiber.Ctx) error {
	blogs, err := h.content.Blogs()
	if err != nil {
		return respondError(c, err)
	}
	if blogs == nil {
		blogs = []entity.Blog{}
	}
	return c.JSON(blogs)
}

// Blog GET /api/content/blogs/:slug
func (h *ContentHandler) Blog(c *fiber.Ctx) error {
	b, err := h.content.Blog(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// CreateBlog POST /api/content/blogs (superadmin).
func (h *ContentHandler) CreateBlog(c *fiber.Ctx) error {
	var in dto.BlogCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Slug == "" || in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "slug y title son requeridos"})
	}
	b, err := h.content.CreateBlog(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

// UpdateBlog PUT /api/content/blogs/:slug (superadmin).
func (h *ContentHandler) UpdateBlog(c *fiber.Ctx) error {
	var patch repository.BlogPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	b, err := h.content.UpdateBlog(c.Params("slug"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// DeleteBlog DELETE /api/content/blogs/:slug (superadmin).
func (h *ContentHandler) DeleteBlog(c *fiber.Ctx) error {
	if err := h.content.DeleteBlog(c.Params("slug")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "blog eliminado"})
}

// FAQs GET /api/content/faqs — sólo publicadas, ordenadas por Order.
func (h *ContentHandler) FAQs(c *fiber.Ctx) error {
	faqs, err := h.content.FAQs()
	if err != nil {
		return respondError(c, err)
	}
	if faqs == nil {
		faqs = []entity.FAQ{}
	}
	return c.JSON(faqs)
}

// CreateFAQ POST /api/content/faqs (superadmin).
func (h *ContentHandler) CreateFAQ(c *fiber.Ctx) error {
	var in dto.FAQCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Question == "" || in.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "question y answer son requeridos"})
	}
	f, err := h.content.CreateFAQ(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(f)
}

// UpdateFAQ PUT /api/content/faqs/:id (superadmin).
func (h *ContentHandler) UpdateFAQ(c *fiber.Ctx) error {
	var patch repository.FAQPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	f, err := h.content.UpdateFAQ(c.Params("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(f)
}

// DeleteFAQ DELETE /api/content/faqs/:id (superadmin).
func (h *ContentHandler) DeleteFAQ(c *fiber.Ctx) error {
	if err := h.content.DeleteFAQ(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "faq eliminada"})
}

// Plans GET /api/payment/plans — catálogo público ordenado por precio.
func (h *ContentHandler) Plans(c *fiber.Ctx) error {
	plans, err := h.admin.Plans()
	if err != nil {
		return respondError(c, err)
	}
	if plans == nil {
		plans = []entity.Plan{}
	}
	return c.JSON(plans)
}
