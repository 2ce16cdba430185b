package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gemstone-api/internal/application/sales"
	"github.com/jhoicas/gemstone-api/internal/application/statement"
	"github.com/jhoicas/gemstone-api/pkg/logger"
)

// InvoiceHandler sirve comprobantes guardados y el estado de ventas por rango móvil.
type InvoiceHandler struct {
	documents  sales.DocumentSink
	statements *statement.UseCase
	log        *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(documents sales.DocumentSink, statements *statement.UseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{documents: documents, statements: statements, log: log}
}

// Statement godoc
// @Summary      Estado de ventas por rango móvil (PDF)
// @Description  range: month | six_months | year. Vacío o desconocido cubre desde 1970-01-01. Más recientes primero.
// @Tags         invoices
// @Produce      application/pdf
// @Param        range  query  string  false  "Rango"
// @Success      200    {file}  binary
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /invoices/statement [get]
func (h *InvoiceHandler) Statement(c *fiber.Ctx) error {
	res, err := h.statements.Rolling(c.UserContext(), c.Query("range"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendPDF(c, res.Filename, res.PDF)
}

// Download godoc
// @Summary      Descargar comprobante de venta
// @Tags         invoices
// @Produce      application/pdf
// @Param        filename  path  string  true  "invoice_<id>.pdf"
// @Success      200       {file}  binary
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /invoices/{filename} [get]
func (h *InvoiceHandler) Download(c *fiber.Ctx) error {
	name := c.Params("filename")
	rc, err := h.documents.Open(c.UserContext(), name)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	// fasthttp cierra el stream al terminar de enviarlo.
	return c.SendStream(rc)
}

func sendPDF(c *fiber.Ctx, filename string, pdf []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
