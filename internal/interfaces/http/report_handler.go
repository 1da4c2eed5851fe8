package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanStock-api/internal/application/dto"
	"github.com/jhoicas/ScanStock-api/internal/application/report"
)

// ReportHandler maneja la exportación PDF del catálogo (protegido).
type ReportHandler struct {
	uc *report.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ProductListPDF godoc
// @Summary      Exportar el catálogo como PDF
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/report.pdf [get]
func (h *ReportHandler) ProductListPDF(c *fiber.Ctx) error {
	data, err := h.uc.ProductListPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(data)
}
