// Siembra el catálogo de productos: un juego de demostración o un CSV
// exportado de sistemas legados (usualmente en ISO-8859-1).
//
// Uso:
//
//	go run ./cmd/seed                      # productos de demostración
//	go run ./cmd/seed -csv catalogo.csv    # CSV: code,name,unit_price,stock,sale_mode
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/postgres"
	"github.com/jhoicas/PuntoVenta-api/pkg/config"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

func main() {
	csvPath := flag.String("csv", "", "ruta del CSV de catálogo (code,name,unit_price,stock,sale_mode)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewProductRepository(pool)

	var products []entity.Product
	if *csvPath != "" {
		products, err = loadCSV(*csvPath)
		if err != nil {
			log.Fatal().Err(err).Str("csv", *csvPath).Msg("leer catálogo")
		}
	} else {
		products = demoProducts()
	}

	created, skipped := 0, 0
	for i := range products {
		err := repo.Create(ctx, &products[i])
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
		default:
			log.Fatal().Err(err).Str("code", products[i].Code).Msg("insertar producto")
		}
	}
	log.Info().Int("creados", created).Int("omitidos", skipped).Msg("catálogo sembrado")
}

func demoProducts() []entity.Product {
	mk := func(code, name, price, stock, mode string) entity.Product {
		return entity.Product{
			Code:          code,
			Name:          name,
			UnitPrice:     decimal.RequireFromString(price),
			StockQuantity: decimal.RequireFromString(stock),
			SaleMode:      mode,
		}
	}
	return []entity.Product{
		mk("7501000111112", "Refresco Cola 600ml", "18.50", "48", entity.SaleModeUnit),
		mk("7501000222223", "Galletas María 170g", "14.00", "30", entity.SaleModeUnit),
		mk("7501000333334", "Leche Entera 1L", "26.00", "24", entity.SaleModeUnit),
		mk("7501000444445", "Jabón de Tocador", "12.50", "60", entity.SaleModeUnit),
		mk("GR001", "Arroz", "32.00", "25", entity.SaleModeBulk),
		mk("GR002", "Frijol Negro", "44.00", "18.5", entity.SaleModeBulk),
		mk("GR003", "Azúcar Estándar", "28.00", "40", entity.SaleModeBulk),
	}
}

// loadCSV lee el catálogo. Los exports legados suelen venir en ISO-8859-1;
// si el archivo no es UTF-8 válido se decodifica con Latin-1.
func loadCSV(path string) ([]entity.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader = strings.NewReader(string(raw))
	if !utf8.Valid(raw) {
		r = transform.NewReader(strings.NewReader(string(raw)), charmap.ISO8859_1.NewDecoder())
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 5
	reader.TrimLeadingSpace = true

	var products []entity.Product
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line+1, err)
		}
		line++
		// Cabecera opcional
		if line == 1 && strings.EqualFold(record[0], "code") {
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, record[2])
		}
		stock, err := decimal.NewFromString(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: stock inválido %q", line, record[3])
		}
		mode := strings.TrimSpace(record[4])
		if mode != entity.SaleModeUnit && mode != entity.SaleModeBulk {
			return nil, fmt.Errorf("línea %d: modo de venta inválido %q", line, mode)
		}

		products = append(products, entity.Product{
			Code:          strings.TrimSpace(record[0]),
			Name:          strings.TrimSpace(record[1]),
			UnitPrice:     price,
			StockQuantity: stock,
			SaleMode:      mode,
		})
	}
	return products, nil
}
