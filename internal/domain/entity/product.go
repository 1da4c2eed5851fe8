package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto escaneable del almacén con su stock por ubicación.
// El ID lo asigna el store como max(existentes)+1; Barcode es la clave de búsqueda
// externa (único entre todos los productos).
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Barcode  string          `json:"barcode"`
	Price    decimal.Decimal `json:"price"`
	Solde    decimal.Decimal `json:"solde"` // precio con descuento
	Supplier string          `json:"supplier"`
	Image    string          `json:"image"`
	Stocks   []StockLocation `json:"stocks"`
	EditedBy []EditRecord    `json:"editedBy"`
}

// StockLocation stock de un producto en una ubicación física.
// El ID se asigna como productID*1000 + ordinal (1-based) al crear el producto.
// Quantity nunca es negativa; AddedCount y RemovedCount son contadores acumulados
// monótonos usados solo para estadísticas.
type StockLocation struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Quantity     int64        `json:"quantity"`
	AddedCount   int64        `json:"addedCount"`
	RemovedCount int64        `json:"removedCount"`
	Localisation Localisation `json:"localisation"`
}

// Localisation ciudad y coordenadas opcionales de una ubicación de stock.
type Localisation struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// EditRecord atribución de una edición: qué bodeguero tocó el producto y cuándo.
// Se agrega (nunca se muta ni se borra) al crear el producto y en cada delta != 0.
type EditRecord struct {
	WarehousemanID int64     `json:"warehousemanId"`
	At             time.Time `json:"at"`
}

// Location busca una ubicación de stock por ID. Devuelve nil si no existe.
func (p *Product) Location(stockLocationID int64) *StockLocation {
	for i := range p.Stocks {
		if p.Stocks[i].ID == stockLocationID {
			return &p.Stocks[i]
		}
	}
	return nil
}

// EditedByOperator indica si al menos un EditRecord pertenece al bodeguero dado.
func (p *Product) EditedByOperator(warehousemanID int64) bool {
	for _, r := range p.EditedBy {
		if r.WarehousemanID == warehousemanID {
			return true
		}
	}
	return false
}

// OutOfStock indica si todas las ubicaciones del producto tienen cantidad cero.
func (p *Product) OutOfStock() bool {
	for _, s := range p.Stocks {
		if s.Quantity != 0 {
			return false
		}
	}
	return true
}

// TotalQuantity suma las cantidades de todas las ubicaciones.
func (p *Product) TotalQuantity() int64 {
	var total int64
	for _, s := range p.Stocks {
		total += s.Quantity
	}
	return total
}

// Clone copia profunda del producto (slices incluidos) para lecturas snapshot:
// ningún lector debe observar mutaciones a medias del documento en memoria.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Stocks = make([]StockLocation, len(p.Stocks))
	copy(cp.Stocks, p.Stocks)
	cp.EditedBy = make([]EditRecord, len(p.EditedBy))
	copy(cp.EditedBy, p.EditedBy)
	return &cp
}
