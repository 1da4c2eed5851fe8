package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Los precios son punteros
// para distinguir "campo ausente" (error de validación) de "precio cero".
type CreateProductRequest struct {
	Name     string                `json:"name"`
	Type     string                `json:"type"`
	Barcode  string                `json:"barcode"`
	Price    *decimal.Decimal      `json:"price"`
	Solde    *decimal.Decimal      `json:"solde"`
	Supplier string                `json:"supplier"`
	Image    string                `json:"image"`
	Stocks   []CreateStockLocation `json:"stocks"`
}

// CreateStockLocation ubicación inicial de stock al crear un producto.
// El ID lo asigna el store (productID*1000 + ordinal).
type CreateStockLocation struct {
	Name         string               `json:"name"`
	Quantity     int64                `json:"quantity"`
	Localisation LocalisationResponse `json:"localisation"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       int64                   `json:"id"`
	Name     string                  `json:"name"`
	Type     string                  `json:"type"`
	Barcode  string                  `json:"barcode"`
	Price    decimal.Decimal         `json:"price"`
	Solde    decimal.Decimal         `json:"solde"`
	Supplier string                  `json:"supplier"`
	Image    string                  `json:"image"`
	Stocks   []StockLocationResponse `json:"stocks"`
	EditedBy []EditRecordResponse    `json:"editedBy"`
}

// StockLocationResponse ubicación de stock en respuestas.
type StockLocationResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Quantity     int64                `json:"quantity"`
	AddedCount   int64                `json:"addedCount"`
	RemovedCount int64                `json:"removedCount"`
	Localisation LocalisationResponse `json:"localisation"`
}

// LocalisationResponse ciudad y coordenadas de una ubicación.
type LocalisationResponse struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// EditRecordResponse registro de atribución en respuestas.
type EditRecordResponse struct {
	WarehousemanID int64     `json:"warehousemanId"`
	At             time.Time `json:"at"`
}

// ProductListResponse lista de productos en orden de inserción.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
