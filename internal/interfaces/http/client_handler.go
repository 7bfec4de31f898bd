package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/application/usecase"
)

// ClientHandler maneja /clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   dto.ClientResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /clientes [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, errMessages{op: "clientes.list", internal: "Error al obtener clientes"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /clientes [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, errMessages{op: "clientes.create", internal: "Error al agregar cliente"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Cliente agregado exitosamente", ID: id})
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /clientes/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, errMessages{
			op:       "clientes.delete",
			notFound: "Cliente no encontrado",
			internal: "Error al eliminar cliente",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente eliminado exitosamente"})
}
