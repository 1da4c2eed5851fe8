// Generador de semilla: escribe un documento db.json inicial con bodegueros
// (clave secreta hasheada con bcrypt) y productos de ejemplo.
//
// Uso:
//
//	go run ./cmd/seed -out db.json
//
// Las claves planas se imprimen una sola vez por stdout para poder probar el login.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
	"github.com/jhoicas/ScanStock-api/internal/infrastructure/store"
)

func main() {
	out := flag.String("out", "db.json", "ruta del documento JSON a generar")
	flag.Parse()

	doc, plainKeys, err := buildSeed()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error generando semilla:", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error serializando documento:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "error escribiendo", *out, ":", err)
		os.Exit(1)
	}

	fmt.Println("documento generado en", *out)
	fmt.Println("claves de acceso (guárdalas, no se vuelven a mostrar):")
	for id, key := range plainKeys {
		fmt.Printf("  bodeguero %d -> %s\n", id, key)
	}
}

func buildSeed() (*store.Document, map[int64]string, error) {
	plainKeys := map[int64]string{
		1000: "AH90907J",
		1001: "PM19283K",
	}

	warehousemans := []*entity.Warehouseman{
		{ID: 1000, Name: "Hiba Chaari", WarehouseID: 1999},
		{ID: 1001, Name: "Yassine Benali", WarehouseID: 2991},
	}
	for _, w := range warehousemans {
		hash, err := bcrypt.GenerateFromPassword([]byte(plainKeys[w.ID]), bcrypt.DefaultCost)
		if err != nil {
			return nil, nil, fmt.Errorf("hash de clave del bodeguero %d: %w", w.ID, err)
		}
		w.SecretKeyHash = string(hash)
	}

	now := time.Now().UTC().Truncate(time.Second)

	products := []*entity.Product{
		{
			ID:       1,
			Name:     "Laptop HP Pavilion",
			Type:     "Informatique",
			Barcode:  "6111200000001",
			Price:    decimal.NewFromInt(1199),
			Solde:    decimal.NewFromInt(999),
			Supplier: "HP Maroc",
			Image:    "https://images.example.com/products/laptop-hp.jpg",
			Stocks: []entity.StockLocation{
				{
					ID:       1001,
					Name:     "Gueliz B2",
					Quantity: 12,
					Localisation: entity.Localisation{
						City:      "Marrakesh",
						Latitude:  31.628674,
						Longitude: -7.992047,
					},
				},
				{
					ID:       1002,
					Name:     "Lazari H2",
					Quantity: 0,
					Localisation: entity.Localisation{
						City:      "Oujda",
						Latitude:  34.689404,
						Longitude: -1.912823,
					},
				},
			},
			EditedBy: []entity.EditRecord{
				{WarehousemanID: 1000, At: now.Add(-48 * time.Hour)},
			},
		},
		{
			ID:       2,
			Name:     "Samsung Galaxy S23",
			Type:     "Smartphone",
			Barcode:  "6111200000002",
			Price:    decimal.NewFromInt(899),
			Solde:    decimal.NewFromInt(849),
			Supplier: "Samsung Electronics",
			Image:    "https://images.example.com/products/galaxy-s23.jpg",
			Stocks: []entity.StockLocation{
				{
					ID:       2001,
					Name:     "Gueliz B2",
					Quantity: 30,
					Localisation: entity.Localisation{
						City:      "Marrakesh",
						Latitude:  31.628674,
						Longitude: -7.992047,
					},
				},
			},
			EditedBy: []entity.EditRecord{
				{WarehousemanID: 1001, At: now.Add(-24 * time.Hour)},
			},
		},
		{
			ID:       3,
			Name:     "Clavier mécanique Logitech",
			Type:     "Accessoires",
			Barcode:  "6111200000003",
			Price:    decimal.NewFromFloat(79.90),
			Solde:    decimal.NewFromFloat(79.90),
			Supplier: "Logitech",
			Image:    "https://images.example.com/products/clavier-logitech.jpg",
			Stocks: []entity.StockLocation{
				{
					ID:       3001,
					Name:     "Lazari H2",
					Quantity: 0,
					Localisation: entity.Localisation{
						City:      "Oujda",
						Latitude:  34.689404,
						Longitude: -1.912823,
					},
				},
			},
			EditedBy: []entity.EditRecord{},
		},
	}

	return &store.Document{
		Products:      products,
		Warehousemans: warehousemans,
	}, plainKeys, nil
}
