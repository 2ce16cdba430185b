package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gemstone-api/internal/application/dto"
	"github.com/jhoicas/gemstone-api/internal/application/sales"
	"github.com/jhoicas/gemstone-api/internal/application/usecase"
	"github.com/jhoicas/gemstone-api/pkg/logger"
)

// GemstoneHandler maneja lotes de gemas y su venta.
type GemstoneHandler struct {
	uc   *usecase.GemstoneUseCase
	sell *sales.SellUseCase
	log  *logger.Logger
}

// NewGemstoneHandler construye el handler.
func NewGemstoneHandler(uc *usecase.GemstoneUseCase, sell *sales.SellUseCase, log *logger.Logger) *GemstoneHandler {
	return &GemstoneHandler{uc: uc, sell: sell, log: log}
}

// Create godoc
// @Summary      Registrar lote
// @Tags         gemstones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGemstoneRequest  true  "Datos del lote"
// @Success      201   {object}  dto.GemstoneResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gemstones/add [post]
func (h *GemstoneHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGemstoneRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar lotes
// @Tags         gemstones
// @Produce      json
// @Success      200  {array}  dto.GemstoneResponse
// @Router       /api/gemstones/all [get]
func (h *GemstoneHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar lotes por nombre, código, forma o peso
// @Tags         gemstones
// @Produce      json
// @Param        query  query  string  false  "Texto a buscar"
// @Success      200    {array}  dto.GemstoneResponse
// @Router       /api/gemstones/search [get]
func (h *GemstoneHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("query"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar lote
// @Tags         gemstones
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateGemstoneRequest  true  "Datos del lote"
// @Success      200   {object}  dto.GemstoneResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gemstones/{id} [put]
func (h *GemstoneHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGemstoneRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         gemstones
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gemstones/{id} [delete]
func (h *GemstoneHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "lote eliminado"})
}

// Sell godoc
// @Summary      Vender contra un lote
// @Description  Registra la venta y descuenta el lote en una sola transacción. El comprobante PDF se genera en segundo plano.
// @Tags         gemstones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellRequest  true  "Venta"
// @Success      200   {object}  dto.SellResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/gemstones/sell [post]
func (h *GemstoneHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.sell.Sell(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
