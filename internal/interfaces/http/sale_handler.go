package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sales-auth-api/internal/application/dto"
	"github.com/tu-usuario/sales-auth-api/internal/application/usecase"
	"github.com/tu-usuario/sales-auth-api/internal/domain"
	"github.com/tu-usuario/sales-auth-api/pkg/logger"
)

// SaleHandler libro de ventas por usuario.
type SaleHandler struct {
	uc  *usecase.SaleUseCase
	log *logger.Logger
}

// NewSaleHandler construye el handler del libro de ventas.
func NewSaleHandler(uc *usecase.SaleUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Libro de ventas de un usuario
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.Response
// @Router       /sale/{id} [get]
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("User ID is required"))
	}
	out, err := h.uc.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found"))
		}
		h.log.Error().Err(err).Str("id", id).Msg("get user sale")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Internal(err))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Registrar una venta en el libro del usuario
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateSaleRequest  true  "sale (numérico); totalExpenses, netProfit, revenue opcionales"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /sale/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("User ID is required"))
	}
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Sale must be a number"))
	}
	update, err := in.Parse()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Sale must be a number"))
	}
	out, err := h.uc.Append(id, update)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found"))
		}
		h.log.Error().Err(err).Str("id", id).Msg("update user sale")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Internal(err))
	}
	return c.JSON(out)
}
