package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/application/sales"
	"github.com/joansel25/farmacia-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturas de venta y sus
// detalles (protegido).
type InvoiceHandler struct {
	uc *sales.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *sales.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create crea una factura con sus líneas en una sola transacción: descuenta
// stock, congela precios unitarios y calcula el total.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClientID == "" || in.EmployeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id y employee_id son requeridos"})
	}
	out, err := h.uc.CreateInvoice(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrMissingClient):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CLIENT", Message: "la factura requiere un cliente existente"})
		case errors.Is(err, domain.ErrInactiveEmployee):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INACTIVE_EMPLOYEE", Message: "el empleado no está activo"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o empleado no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la venta"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una factura con sus detalles.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista facturas.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.ListInvoices(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una factura restaurando el stock de todas sus líneas.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteInvoice(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddDetail agrega una línea a una factura existente: descuenta stock con el
// precio vigente del producto y recalcula el total.
func (h *InvoiceHandler) AddDetail(c *fiber.Ctx) error {
	var in dto.AddDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddDetail(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDetail cambia la cantidad de una línea. El precio unitario quedó
// congelado al crear la línea; el subtotal y el total se recalculan.
func (h *InvoiceHandler) UpdateDetail(c *fiber.Ctx) error {
	var in dto.UpdateDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateDetail(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteDetail elimina una línea restaurando su stock y recalcula el total.
func (h *InvoiceHandler) DeleteDetail(c *fiber.Ctx) error {
	if err := h.uc.DeleteDetail(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
