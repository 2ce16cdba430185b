package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gemstone-api/internal/application/dto"
	"github.com/jhoicas/gemstone-api/internal/application/statement"
	"github.com/jhoicas/gemstone-api/internal/application/usecase"
	"github.com/jhoicas/gemstone-api/pkg/logger"
)

// SaleHandler consulta de ventas y descarga del estado por periodo calendario.
type SaleHandler struct {
	uc         *usecase.SaleUseCase
	statements *statement.UseCase
	log        *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, statements *statement.UseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, statements: statements, log: log}
}

// List godoc
// @Summary      Listar ventas (más recientes primero)
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Description  No devuelve el stock al lote.
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}

// DownloadStatement godoc
// @Summary      Estado de ventas de un periodo calendario (PDF)
// @Description  range: last-month | last-6-months | last-year. Otro valor cubre desde 2000-01-01. Orden cronológico.
// @Tags         sales
// @Produce      application/pdf
// @Param        range  path  string  true  "Periodo"
// @Success      200    {file}  binary
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/sales/download-statement/{range} [get]
func (h *SaleHandler) DownloadStatement(c *fiber.Ctx) error {
	res, err := h.statements.Calendar(c.UserContext(), c.Params("range"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendPDF(c, res.Filename, res.PDF)
}
