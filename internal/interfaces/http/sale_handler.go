package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/application/sales"
)

// SaleHandler maneja /ventas: consultas, registro de líneas y comprobante PDF.
type SaleHandler struct {
	query    *sales.SaleQueryUseCase
	register *sales.RegisterSaleLineUseCase
	receipt  *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(
	query *sales.SaleQueryUseCase,
	register *sales.RegisterSaleLineUseCase,
	receipt *sales.ReceiptUseCase,
) *SaleHandler {
	return &SaleHandler{query: query, register: register, receipt: receipt}
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {array}   dto.SaleResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List(c.UserContext())
	if err != nil {
		return respondError(c, err, errMessages{op: "ventas.list", internal: "Error al obtener ventas"})
	}
	return c.JSON(out)
}

// RegisterLine godoc
// @Summary      Registrar detalle de venta
// @Description  Crea o actualiza la venta, agrega la línea y descuenta el inventario en una transacción.
// @Description  id_venta ausente o 0 crea una venta nueva.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterSaleLineRequest  true  "Línea de venta"
// @Success      200   {object}  dto.RegisterSaleLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /ventas/detalle [post]
func (h *SaleHandler) RegisterLine(c *fiber.Ctx) error {
	var in dto.RegisterSaleLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.register.RegisterSaleLineFromRequest(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, errMessages{op: "ventas.detalle", internal: "Error al manejar venta"})
	}
	return c.JSON(out)
}

// Lines godoc
// @Summary      Líneas de una venta
// @Tags         ventas
// @Produce      json
// @Param        id   path      int  true  "ID de la venta"
// @Success      200  {array}   dto.SaleLineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ventas/{id}/detalle [get]
func (h *SaleHandler) Lines(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.query.Lines(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, errMessages{
			op:       "ventas.lines",
			notFound: "Venta no encontrada",
			internal: "Error al obtener el detalle de la venta",
		})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante de venta (PDF)
// @Tags         ventas
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ventas/{id}/comprobante [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	pdf, filename, err := h.receipt.Download(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, errMessages{
			op:       "ventas.comprobante",
			notFound: "Venta no encontrada",
			internal: "Error al generar el comprobante",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
