package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sales-auth-api/internal/application/auth"
	"github.com/tu-usuario/sales-auth-api/internal/application/dto"
	"github.com/tu-usuario/sales-auth-api/internal/domain"
	"github.com/tu-usuario/sales-auth-api/pkg/logger"
)

// AuthHandler maneja login y el perfil del token.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "identifier, password, role"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Email/username, password, and role are required"))
	}
	if in.Identifier == "" || in.Password == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Email/username, password, and role are required"))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found"))
		case errors.Is(err, domain.ErrRoleMismatch):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Role does not match for this user."))
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid credentials"))
		}
		h.log.Error().Err(err).Str("identifier", in.Identifier).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Internal(err))
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Me(GetUserID(c))
	if err != nil {
		// El token puede seguir vigente después de borrar la cuenta.
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found"))
		}
		h.log.Error().Err(err).Msg("me")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Internal(err))
	}
	return c.JSON(dto.MeResponse{Success: true, User: *user})
}
