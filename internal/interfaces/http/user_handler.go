package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sales-auth-api/internal/application/dto"
	"github.com/tu-usuario/sales-auth-api/internal/application/usecase"
	"github.com/tu-usuario/sales-auth-api/internal/domain"
	"github.com/tu-usuario/sales-auth-api/pkg/logger"
)

// UserHandler administración de cuentas: alta, listado y baja.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler de administración de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Alta de usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "userName, email, password, role"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /add [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("All fields are required"))
	}
	if in.UserName == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("All fields are required"))
	}
	if err := h.uc.Create(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid role"))
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("User already exists"))
		}
		h.log.Error().Err(err).Str("email", in.Email).Msg("add user")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Internal(err))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("User added successfully"))
}

// List godoc
// @Summary      Listar todos los usuarios
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.ListUsersResponse
// @Router       /all [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("list users")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Internal(err))
	}
	return c.JSON(dto.ListUsersResponse{Success: true, Users: users})
}

// Delete godoc
// @Summary      Baja de usuario por ID
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /delete/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("User ID is required"))
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found"))
		}
		h.log.Error().Err(err).Str("id", id).Msg("delete user")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Internal(err))
	}
	return c.JSON(dto.OK("User deleted successfully"))
}
