package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/application/usecase"
)

// SupplierHandler maneja /proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Produce      json
// @Success      200  {array}   dto.SupplierResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /proveedores [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, errMessages{op: "proveedores.list", internal: "Error al obtener proveedores"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /proveedores [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, errMessages{op: "proveedores.create", internal: "Error al agregar proveedor"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Proveedor agregado exitosamente", ID: id})
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         proveedores
// @Produce      json
// @Param        id   path      int  true  "ID del proveedor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /proveedores/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, errMessages{
			op:       "proveedores.delete",
			notFound: "Proveedor no encontrado",
			internal: "Error al eliminar proveedor",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Proveedor eliminado exitosamente"})
}
