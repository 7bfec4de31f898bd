package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para /productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, errMessages{op: "productos.list", internal: "Error al obtener productos"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, errMessages{op: "productos.create", internal: "Error al agregar producto"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Producto agregado exitosamente", ID: id})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, errMessages{
			op:       "productos.delete",
			notFound: "Producto no encontrado",
			internal: "Error al eliminar producto",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado exitosamente"})
}
