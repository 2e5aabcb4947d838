package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
)

// BarcodeGenerator genera la etiqueta PNG de un SKU.
type BarcodeGenerator interface {
	GenerateSKU(sku string) ([]byte, error)
}

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc      *inventory.UseCase
	barcode BarcodeGenerator
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.UseCase, barcode BarcodeGenerator) *ProductHandler {
	return &ProductHandler{uc: uc, barcode: barcode}
}

// Create godoc
// @Summary      Crear producto
// @Description  Crea el producto; si quantity > 0 registra el movimiento de apertura en el ledger.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateProduct(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Description  Búsqueda por substring (nombre, SKU, proveedor), filtro por categoría y orden.
// @Tags         products
// @Produce      json
// @Param        search      query  string  false  "Substring sobre nombre, SKU o proveedor"
// @Param        category    query  string  false  "Categoría exacta"
// @Param        sort_by     query  string  false  "name | sku | category | quantity | unit_price"  default(name)
// @Param        sort_order  query  string  false  "asc | desc"  default(asc)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.Context(), listQueryFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Parche parcial de atributos. La cantidad no es editable: se mueve vía movimientos.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateProduct(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Elimina el producto del catálogo. Su historial de movimientos se conserva.
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Barcode godoc
// @Summary      Etiqueta Code 128 del SKU
// @Tags         products
// @Produce      png
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/barcode [get]
func (h *ProductHandler) Barcode(c *fiber.Ctx) error {
	product, err := h.uc.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	img, err := h.barcode.GenerateSKU(product.SKU)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(img)
}

// listQueryFrom mapea los query params comunes de listado/export.
func listQueryFrom(c *fiber.Ctx) inventory.ListQuery {
	return inventory.ListQuery{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		SortField: c.Query("sort_by", "name"),
		SortOrder: c.Query("sort_order", "asc"),
	}
}
