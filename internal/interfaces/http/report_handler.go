package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/joansel25/farmacia-api/internal/application/reports"
)

// ReportHandler sirve los reportes en PDF (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}

// InvoicePDF descarga la representación gráfica de una factura.
func (h *ReportHandler) InvoicePDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.InvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// ProductPDF descarga la ficha de un producto.
func (h *ReportHandler) ProductPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.ProductPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// ProductsPDF descarga el listado completo de productos.
func (h *ReportHandler) ProductsPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.ProductsPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// MovementPDF descarga el reporte de un movimiento.
func (h *ReportHandler) MovementPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.MovementPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// MovementsPDF descarga el listado completo de movimientos.
func (h *ReportHandler) MovementsPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.MovementsPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}
