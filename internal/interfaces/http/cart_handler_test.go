package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/pos"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

// productosMem implementa repository.ProductRepository en memoria.
type productosMem struct {
	byCode map[string]entity.Product
}

func (r *productosMem) ListAll(ctx context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.byCode))
	for _, p := range r.byCode {
		out = append(out, p)
	}
	return out, nil
}

func (r *productosMem) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	p, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productosMem) Create(ctx context.Context, p *entity.Product) error { return nil }

// ventasMem implementa repository.SaleRepository en memoria.
type ventasMem struct {
	saved *entity.SaleDraft
}

func (r *ventasMem) Save(ctx context.Context, draft *entity.SaleDraft) (string, error) {
	r.saved = draft
	return "venta-777", nil
}

func (r *ventasMem) GetByID(ctx context.Context, id string) (*entity.Sale, []entity.SaleItem, error) {
	return nil, nil, nil
}

type pdfNop struct{}

func (pdfNop) GenerateReceiptPDF(store pos.StoreInfo, sale *entity.Sale, items []entity.SaleItem) ([]byte, error) {
	return []byte("%PDF-"), nil
}

func newTestApp(products ...entity.Product) (*fiber.App, *ventasMem) {
	repo := &productosMem{byCode: map[string]entity.Product{}}
	for _, p := range products {
		repo.byCode[p.Code] = p
	}
	ventas := &ventasMem{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	engine := cart.NewEngine()
	store := pos.StoreInfo{Name: "Tienda Test", Currency: "MXN"}

	app := fiber.New()
	Router(app, RouterDeps{
		CartUC:       pos.NewCartUseCase(engine, repo, log),
		PriceChecker: pos.NewPriceCheckerUseCase(repo),
		Checkout:     pos.NewCheckoutCoordinator(engine, ventas, log),
		ReceiptUC:    pos.NewReceiptUseCase(ventas, pdfNop{}, store, log),
		SaleRepo:     ventas,
	})
	return app, ventas
}

func productoTest(code string, precio, stock int64) entity.Product {
	return entity.Product{
		ID:            "prod-" + code,
		Code:          code,
		Name:          "Producto " + code,
		UnitPrice:     decimal.NewFromInt(precio),
		StockQuantity: decimal.NewFromInt(stock),
		SaleMode:      entity.SaleModeUnit,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestAddItem_AgregaYDevuelveCarrito(t *testing.T) {
	app, _ := newTestApp(productoTest("A1", 10, 5))

	resp, raw := doJSON(t, app, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Code: "A1"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.CartResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, out.Total.Equal(decimal.NewFromInt(10)))
}

func TestAddItem_NoExiste404(t *testing.T) {
	app, _ := newTestApp()

	resp, raw := doJSON(t, app, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Code: "ZZ"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestAddItem_ExcedeStock409ConDisponible(t *testing.T) {
	app, _ := newTestApp(productoTest("A1", 10, 3))

	qty := decimal.NewFromInt(5)
	resp, raw := doJSON(t, app, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Code: "A1", Quantity: &qty})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "QUANTITY_EXCEEDS_STOCK", out.Code)
	require.NotNil(t, out.Available)
	assert.True(t, out.Available.Equal(decimal.NewFromInt(3)), "la respuesta informa el disponible")
}

func TestAddItem_GranelPorCodigo422(t *testing.T) {
	granel := entity.Product{
		ID: "prod-GR1", Code: "GR1", Name: "Arroz",
		UnitPrice:     decimal.NewFromInt(32),
		StockQuantity: decimal.NewFromInt(25),
		SaleMode:      entity.SaleModeBulk,
	}
	app, _ := newTestApp(granel)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Code: "GR1"})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "WEIGHT_REQUIRED", out.Code)
}

func TestAddBulk_Y_Checkout(t *testing.T) {
	granel := entity.Product{
		ID: "prod-GR1", Code: "GR1", Name: "Arroz",
		UnitPrice:     decimal.NewFromInt(10),
		StockQuantity: decimal.NewFromInt(2),
		SaleMode:      entity.SaleModeBulk,
	}
	app, ventas := newTestApp(granel)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/cart/bulk", dto.AddBulkRequest{Code: "GR1", Grams: decimal.NewFromInt(500)})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/checkout", dto.CheckoutRequest{PaymentMethod: entity.PaymentCash})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "venta-777", out["sale_id"])

	require.NotNil(t, ventas.saved)
	assert.True(t, ventas.saved.Total.Equal(decimal.NewFromInt(5)), "500g a 10/kg cobra 5.00")

	// Tras el cobro el carrito queda vacío.
	resp, raw = doJSON(t, app, http.MethodGet, "/api/cart", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var view dto.CartResponse
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Empty(t, view.Lines)
}

func TestCheckout_CarritoVacio400(t *testing.T) {
	app, _ := newTestApp()

	resp, raw := doJSON(t, app, http.MethodPost, "/api/checkout", dto.CheckoutRequest{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "EMPTY_CART", out.Code)
}

func TestUpdateLine_RecortaYResponde(t *testing.T) {
	app, _ := newTestApp(productoTest("A1", 10, 5))

	_, _ = doJSON(t, app, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Code: "A1"})
	resp, raw := doJSON(t, app, http.MethodPut, "/api/cart/items/A1", dto.UpdateLineRequest{Quantity: decimal.NewFromInt(99)})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.CartResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].Quantity.Equal(decimal.NewFromInt(5)), "la cantidad queda recortada al stock")
}

func TestGetProductByCode_Checador(t *testing.T) {
	app, _ := newTestApp(productoTest("A1", 10, 5))

	resp, raw := doJSON(t, app, http.MethodGet, "/api/products/A1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Producto A1", out.Name)
	assert.True(t, out.UnitPrice.Equal(decimal.NewFromInt(10)))
}

func TestSearch_FiltraPorTexto(t *testing.T) {
	app, _ := newTestApp(productoTest("A1", 10, 5), productoTest("B2", 20, 5))

	resp, raw := doJSON(t, app, http.MethodGet, "/api/products/search?q=b2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "B2", out[0].Code)
}
