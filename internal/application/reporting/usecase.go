// Package reporting exporta el catálogo filtrado como CSV o PDF. El CSV
// replica el formato del export original: cabecera fija y una fila por
// producto actualmente filtrado.
package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/stockflow/stockflow-api/internal/application/inventory"
)

// csvHeader orden fijo de columnas del export.
var csvHeader = []string{"Name", "SKU", "Category", "Quantity", "Reorder Level", "Unit Price", "Supplier", "Location"}

// UseCase casos de uso de reportes. Exporta exactamente lo que el listado
// filtrado devuelve: misma búsqueda, mismo filtro, mismo orden.
type UseCase struct {
	inv *inventory.UseCase
	pdf InventoryPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(inv *inventory.UseCase, pdf InventoryPDFGenerator) *UseCase {
	return &UseCase{inv: inv, pdf: pdf}
}

// ExportCSV genera el CSV y el nombre de archivo sugerido
// (inventory_report_<fecha ISO>.csv).
func (uc *UseCase) ExportCSV(ctx context.Context, q inventory.ListQuery) ([]byte, string, error) {
	products, err := uc.inv.FilteredProducts(ctx, q)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, "", fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.Name,
			p.SKU,
			string(p.Category),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.ReorderLevel),
			p.UnitPrice.String(),
			p.Supplier,
			p.Location,
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("csv: fila %s: %w", p.SKU, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("csv: flush: %w", err)
	}

	return buf.Bytes(), CSVFilename(time.Now()), nil
}

// ExportPDF genera el reporte PDF vía el puerto de infraestructura.
func (uc *UseCase) ExportPDF(ctx context.Context, q inventory.ListQuery) ([]byte, string, error) {
	products, err := uc.inv.FilteredProducts(ctx, q)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	doc, err := uc.pdf.GenerateInventoryReport(ctx, products, now)
	if err != nil {
		return nil, "", fmt.Errorf("reporte pdf: %w", err)
	}
	return doc, PDFFilename(now), nil
}

// CSVFilename devuelve inventory_report_<YYYY-MM-DD>.csv.
func CSVFilename(t time.Time) string {
	return fmt.Sprintf("inventory_report_%s.csv", t.Format("2006-01-02"))
}

// PDFFilename devuelve inventory_report_<YYYY-MM-DD>.pdf.
func PDFFilename(t time.Time) string {
	return fmt.Sprintf("inventory_report_%s.pdf", t.Format("2006-01-02"))
}
