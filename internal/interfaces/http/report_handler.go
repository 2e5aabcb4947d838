package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/stockflow/stockflow-api/internal/application/reporting"
)

// ReportHandler exporta el catálogo filtrado como CSV o PDF. Acepta los
// mismos query params que el listado de productos: el export refleja
// exactamente la vista filtrada.
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportCSV godoc
// @Summary      Exportar inventario a CSV
// @Tags         reports
// @Produce      text/csv
// @Param        search      query  string  false  "Substring sobre nombre, SKU o proveedor"
// @Param        category    query  string  false  "Categoría exacta"
// @Param        sort_by     query  string  false  "Campo de orden"  default(name)
// @Param        sort_order  query  string  false  "asc | desc"      default(asc)
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportCSV(c.Context(), listQueryFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar inventario a PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        search      query  string  false  "Substring sobre nombre, SKU o proveedor"
// @Param        category    query  string  false  "Categoría exacta"
// @Param        sort_by     query  string  false  "Campo de orden"  default(name)
// @Param        sort_order  query  string  false  "asc | desc"      default(asc)
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportPDF(c.Context(), listQueryFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
