package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/analytics"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/application/reporting"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/infrastructure/barcode"
	apphttp "github.com/stockflow/stockflow-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memStore implementación en memoria del BlobStore para los tests HTTP.
type memStore struct {
	products  []entity.Product
	movements []entity.StockMovement
}

func (s *memStore) LoadProducts(context.Context) ([]entity.Product, error) {
	return append([]entity.Product(nil), s.products...), nil
}

func (s *memStore) SaveProducts(_ context.Context, products []entity.Product) error {
	s.products = append([]entity.Product(nil), products...)
	return nil
}

func (s *memStore) LoadMovements(context.Context) ([]entity.StockMovement, error) {
	return append([]entity.StockMovement(nil), s.movements...), nil
}

func (s *memStore) SaveMovements(_ context.Context, movements []entity.StockMovement) error {
	s.movements = append([]entity.StockMovement(nil), movements...)
	return nil
}

// fakePDF evita generar un PDF real en los tests de la capa HTTP.
type fakePDF struct{}

func (fakePDF) GenerateInventoryReport(_ context.Context, _ []entity.Product, _ time.Time) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func seededStore() *memStore {
	now := time.Now()
	return &memStore{
		products: []entity.Product{
			{
				ID: "p-1", Name: "Wireless Mouse", SKU: "ELE-042",
				Category: entity.CategoryElectronics, Quantity: 12, ReorderLevel: 10,
				UnitPrice: decimal.NewFromFloat(25.50), Supplier: "TechGear Solutions",
				Location: "Warehouse B-05", CreatedAt: now, UpdatedAt: now,
			},
		},
	}
}

func buildTestApp(store *memStore) *fiber.App {
	app := fiber.New()
	invUC := inventory.NewUseCase(store)
	apphttp.Router(app, apphttp.RouterDeps{
		InventoryUC: invUC,
		DashboardUC: analytics.NewDashboardUseCase(store),
		ReportingUC: reporting.NewUseCase(invUC, fakePDF{}),
		Barcode:     barcode.NewCode128Generator(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_RegistraApertura(t *testing.T) {
	store := seededStore()
	app := buildTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/products", dto.CreateProductRequest{
		Name: "Oak Desk", SKU: "FUR-002", Category: "Furniture",
		Quantity: 8, ReorderLevel: 3, UnitPrice: decimal.NewFromFloat(450.00),
		Supplier: "Comfort Seating Co.", Location: "Warehouse A-14",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Healthy", created.Status)

	// La apertura debe quedar en el ledger.
	mresp := doJSON(t, app, http.MethodGet, "/api/inventory/movements?product_id="+created.ID, nil)
	defer mresp.Body.Close()
	require.Equal(t, http.StatusOK, mresp.StatusCode)
	movements := decode[dto.MovementListResponse](t, mresp)
	require.Equal(t, 1, movements.Total)
	assert.Equal(t, "addition", movements.Items[0].Type)
	assert.Equal(t, "Initial stock entry", movements.Items[0].Reason)
}

func TestCreateProduct_CategoriaInvalida_Retorna400(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodPost, "/api/products", dto.CreateProductRequest{
		Name: "Misterioso", SKU: "XXX-001", Category: "Potions", Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestGetProduct_NoExiste_Retorna404(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodGet, "/api/products/no-such-id", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestUpdateProduct_ParcheParcial(t *testing.T) {
	app := buildTestApp(seededStore())

	newSupplier := "Nuevo Proveedor SA"
	resp := doJSON(t, app, http.MethodPut, "/api/products/p-1", dto.UpdateProductRequest{
		Supplier: &newSupplier,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, newSupplier, updated.Supplier)
	assert.Equal(t, 12, updated.Quantity, "la cantidad no cambia por un PUT")
}

func TestDeleteProduct_ConservaHistorial(t *testing.T) {
	store := seededStore()
	app := buildTestApp(store)

	// Generar historial antes de eliminar.
	mresp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", dto.RegisterMovementRequest{
		ProductID: "p-1", Type: "removal", Quantity: 2,
	})
	mresp.Body.Close()
	require.Equal(t, http.StatusCreated, mresp.StatusCode)

	resp := doJSON(t, app, http.MethodDelete, "/api/products/p-1", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	gresp := doJSON(t, app, http.MethodGet, "/api/products/p-1", nil)
	gresp.Body.Close()
	assert.Equal(t, http.StatusNotFound, gresp.StatusCode)

	// El historial sobrevive a la eliminación del producto.
	hresp := doJSON(t, app, http.MethodGet, "/api/inventory/movements?product_id=p-1", nil)
	defer hresp.Body.Close()
	movements := decode[dto.MovementListResponse](t, hresp)
	assert.Equal(t, 1, movements.Total)
}

func TestListProducts_BusquedaPorProveedor(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodGet, "/api/products?search=techgear", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ProductListResponse](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "ELE-042", list.Items[0].SKU)
}

func TestProductBarcode_DevuelvePNG(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodGet, "/api/products/p-1/barcode", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")), "debe ser un PNG válido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_RemovalConPisoEnCero(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", dto.RegisterMovementRequest{
		ProductID: "p-1", Type: "removal", Quantity: 999,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	gresp := doJSON(t, app, http.MethodGet, "/api/products/p-1", nil)
	defer gresp.Body.Close()
	product := decode[dto.ProductResponse](t, gresp)
	assert.Equal(t, 0, product.Quantity, "removal nunca deja cantidad negativa")
	assert.Equal(t, "Low", product.Status)
}

func TestRegisterMovement_TransferSinDestino_Retorna400(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", dto.RegisterMovementRequest{
		ProductID: "p-1", Type: "transfer", Quantity: 5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterMovement_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", dto.RegisterMovementRequest{
		ProductID: "ghost", Type: "addition", Quantity: 5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReconciliation_CatalogoConsistente(t *testing.T) {
	store := seededStore()
	// Ledger que justifica exactamente la cantidad almacenada.
	store.movements = []entity.StockMovement{
		{ID: "m-1", ProductID: "p-1", ProductName: "Wireless Mouse", Type: entity.MovementTypeAddition, Quantity: 12, Timestamp: time.Now()},
	}
	app := buildTestApp(store)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/reconciliation", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decode[dto.ReconciliationResponse](t, resp)
	assert.True(t, report.Consistent)
	assert.Empty(t, report.Entries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Resumen(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 1, summary.TotalProducts)
	assert.Equal(t, 0, summary.LowStockCount)
	assert.True(t, summary.InventoryValue.Equal(decimal.NewFromFloat(306.00)),
		"12 × 25.50 = 306.00")
}

func TestExportCSV_CabeceraYAdjunto(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodGet, "/api/reports/inventory.csv", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventory_report_")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")

	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,SKU,Category,Quantity,Reorder Level,Unit Price,Supplier,Location", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "ELE-042")
}

func TestExportPDF_DelegaEnGenerador(t *testing.T) {
	app := buildTestApp(seededStore())

	resp := doJSON(t, app, http.MethodGet, "/api/reports/inventory.pdf", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")
}
