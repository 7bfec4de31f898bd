package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionVentas-api/internal/application/usecase"
)

// ReportHandler expone las vistas de estadísticas.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ProductStats godoc
// @Summary      Estadísticas de ventas por producto
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.ProductStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /estadisticas/productos [get]
func (h *ReportHandler) ProductStats(c *fiber.Ctx) error {
	out, err := h.uc.ProductStats(c.UserContext())
	if err != nil {
		return respondError(c, err, errMessages{op: "reportes.estadisticas", internal: "Error al obtener estadísticas de productos"})
	}
	return c.JSON(out)
}

// BestSeller godoc
// @Summary      Producto más vendido
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.ProductStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /producto-mas-vendido [get]
func (h *ReportHandler) BestSeller(c *fiber.Ctx) error {
	out, err := h.uc.BestSellers(c.UserContext())
	if err != nil {
		return respondError(c, err, errMessages{op: "reportes.mas_vendido", internal: "Error al obtener el producto más vendido"})
	}
	return c.JSON(out)
}
