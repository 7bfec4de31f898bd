package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/application/usecase"
)

// EmployeeHandler maneja /empleados.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         empleados
// @Produce      json
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /empleados [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, errMessages{op: "empleados.list", internal: "Error al obtener empleados"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /empleados [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, errMessages{op: "empleados.create", internal: "Error al agregar empleado"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Empleado agregado exitosamente", ID: id})
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         empleados
// @Produce      json
// @Param        id   path      int  true  "ID del empleado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /empleados/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, errMessages{
			op:       "empleados.delete",
			notFound: "Empleado no encontrado",
			internal: "Error al eliminar empleado",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Empleado eliminado exitosamente"})
}
