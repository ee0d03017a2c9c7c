package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/corpcrawl/internal/application/backend"
	"github.com/jhoicas/corpcrawl/internal/application/dto"
)

// AuthHandler maneja registro, login e identidad.
type AuthHandler struct {
	svc *backend.AuthService
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(svc *backend.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password y full_name son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	token, user, err := h.svc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer", User: *user})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	token, user, err := h.svc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer", User: *user})
}

// Me GET /api/auth/me — identidad autoritativa (el cliente la usa para
// sobrescribir su caché optimista de créditos).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.svc.Get(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
