package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/application/inventory"
)

// InventoryHandler maneja /inventario.
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventario
// @Produce      json
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventario [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, errMessages{op: "inventario.list", internal: "Error al obtener inventario"})
	}
	return c.JSON(out)
}

// Initialize godoc
// @Summary      Inicializar inventario de un producto
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body      dto.InitializeInventoryRequest  true  "Producto y stock inicial"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse  "Producto inexistente o inventario ya inicializado"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /inventario [post]
func (h *InventoryHandler) Initialize(c *fiber.Ctx) error {
	var in dto.InitializeInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Initialize(c.UserContext(), in); err != nil {
		return respondError(c, err, errMessages{op: "inventario.init", internal: "Error al inicializar inventario"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Inventario inicializado exitosamente"})
}
