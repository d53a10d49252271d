package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/pos"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CartUC       *pos.CartUseCase
	PriceChecker *pos.PriceCheckerUseCase
	Checkout     *pos.CheckoutCoordinator
	ReceiptUC    *pos.ReceiptUseCase
	SaleRepo     repository.SaleRepository
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo y checador de precios
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.PriceChecker)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:code", productHandler.GetByCode)

	// Carrito de caja
	cartGroup := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.View)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Post("/bulk", cartHandler.AddBulk)
	cartGroup.Put("/items/:code", cartHandler.UpdateLine)
	cartGroup.Delete("/items/:code", cartHandler.RemoveLine)

	// Cobro y ventas
	saleHandler := NewSaleHandler(deps.Checkout, deps.ReceiptUC, deps.SaleRepo)
	api.Post("/checkout", saleHandler.Checkout)
	sales := api.Group("/sales")
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)
}
