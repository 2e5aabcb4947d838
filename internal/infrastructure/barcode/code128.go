// Package barcode genera etiquetas Code 128 en PNG para los SKU del catálogo.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Dimensiones de la etiqueta impresa, en píxeles.
const (
	labelWidth  = 300
	labelHeight = 80
)

// Code128Generator genera códigos de barras Code 128 escalados a un tamaño
// fijo de etiqueta.
type Code128Generator struct{}

// NewCode128Generator construye el generador.
func NewCode128Generator() *Code128Generator { return &Code128Generator{} }

// GenerateSKU codifica el SKU como Code 128 y devuelve el PNG.
func (g *Code128Generator) GenerateSKU(sku string) ([]byte, error) {
	if sku == "" {
		return nil, fmt.Errorf("barcode: SKU vacío")
	}
	code, err := code128.Encode(sku)
	if err != nil {
		return nil, fmt.Errorf("barcode: codificar %q: %w", sku, err)
	}
	scaled, err := barcode.Scale(code, labelWidth, labelHeight)
	if err != nil {
		return nil, fmt.Errorf("barcode: escalar %q: %w", sku, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("barcode: PNG %q: %w", sku, err)
	}
	return buf.Bytes(), nil
}
