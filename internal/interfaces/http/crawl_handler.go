package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/corpcrawl/internal/application/backend"
	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// CrawlHandler maneja envíos individuales, historial y el flujo bulk en dos fases.
type CrawlHandler struct {
	svc *backend.CrawlService
}

// NewCrawlHandler construye el handler de crawl.
func NewCrawlHandler(svc *backend.CrawlService) *CrawlHandler {
	return &CrawlHandler{svc: svc}
}

// Single POST /api/crawl/single — crea una petición descontando un crédito.
func (h *CrawlHandler) Single(c *fiber.Ctx) error {
	var in dto.CrawlSubmitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	req, err := h.svc.Submit(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// Get GET /api/crawl/request/:id
func (h *CrawlHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	req, err := h.svc.Get(GetUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(req)
}

// History GET /api/crawl/history?limit=N — más recientes primero.
func (h *CrawlHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	out, err := h.svc.History(GetUserID(c), limit)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		out = []entity.CrawlRequest{}
	}
	return c.JSON(out)
}

// BulkCheck POST /api/crawl/bulk-check — fase 1: valida el fichero contra el
// saldo fresco sin comprometer nada.
func (h *CrawlHandler) BulkCheck(c *fiber.Ctx) error {
	file, err := h.readFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "fichero requerido"})
	}
	result, err := h.svc.BulkCheck(GetUserID(c), file.name, file.data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// BulkUpload POST /api/crawl/bulk-upload — fase 2: compromete el fichero
// revalidando el saldo (402 si ya no alcanza).
func (h *CrawlHandler) BulkUpload(c *fiber.Ctx) error {
	file, err := h.readFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "fichero requerido"})
	}
	inputType := c.FormValue("input_type", entity.InputDomain)
	result, err := h.svc.BulkUpload(GetUserID(c), file.name, file.data, inputType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

type uploadedFile struct {
	name string
	data []byte
}

func (h *CrawlHandler) readFile(c *fiber.Ctx) (*uploadedFile, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &uploadedFile{name: header.Filename, data: data}, nil
}
