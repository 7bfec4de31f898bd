package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/domain"
)

// errMessages textos visibles para el cliente en una operación concreta.
type errMessages struct {
	op       string // nombre de la operación en los logs
	notFound string
	internal string
}

// respondError traduce un error de dominio a la respuesta HTTP. Es el único punto de mapeo.
// La causa completa solo se registra en el log del servidor.
func respondError(c *fiber.Ctx, err error, m errMessages) error {
	status, body := classify(err, m)

	ev := log.Warn()
	if status >= fiber.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).
		Str("op", m.op).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Msg("petición fallida")

	return c.Status(status).JSON(body)
}

func classify(err error, m errMessages) (int, dto.ErrorResponse) {
	switch {
	// Primero: un fallo de venta envuelve causas como ErrNotFound que no deben dar 404.
	case errors.Is(err, domain.ErrTransactionFailed):
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "TRANSACTION_FAILED", Message: domain.ErrTransactionFailed.Error()}
	case errors.Is(err, domain.ErrProductNotFound):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "El producto especificado no existe"}
	case errors.Is(err, domain.ErrInventoryAlreadyInitialized):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVENTORY_ALREADY_INITIALIZED", Message: "El inventario para este producto ya está inicializado"}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		msg := m.notFound
		if msg == "" {
			msg = "recurso no encontrado"
		}
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: msg}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: m.internal}
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
}
