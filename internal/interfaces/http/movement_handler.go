package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/application/inventory"
	"github.com/joansel25/farmacia-api/internal/domain"
)

// MovementHandler maneja las peticiones HTTP de movimientos de inventario
// (protegido).
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register registra una entrada o salida de inventario. Las entradas exigen
// supplier_id y las salidas client_id; el stock se ajusta en la misma
// transacción que persiste el movimiento.
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterMovement(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrMissingSupplier):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_SUPPLIER", Message: "las entradas requieren un proveedor existente"})
		case errors.Is(err, domain.ErrMissingClient):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CLIENT", Message: "las salidas requieren un cliente existente"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un movimiento por ID.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetMovement(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista movimientos; acepta ?product_id= para filtrar por producto.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.ListMovements(c.Context(), c.Query("product_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un movimiento revirtiendo su efecto sobre el stock. Si la
// reversión dejaría el stock negativo responde 409.
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.DeleteMovement(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "revertir el movimiento dejaría el stock negativo"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
