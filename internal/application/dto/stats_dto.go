package dto

import "github.com/shopspring/decimal"

// RankedProductDTO producto con el total acumulado de unidades agregadas o
// retiradas en todas sus ubicaciones.
type RankedProductDTO struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Total     int64  `json:"total"`
}

// StatisticsResponse reporte de estadísticas filtrado por bodeguero: solo
// cuentan los productos con al menos un EditRecord de ese operador.
type StatisticsResponse struct {
	TotalProducts       int                `json:"totalProducts"`
	OutOfStock          int                `json:"outOfStock"`
	TotalStockValue     decimal.Decimal    `json:"totalStockValue"`
	MostAddedProducts   []RankedProductDTO `json:"mostAddedProducts"`
	MostRemovedProducts []RankedProductDTO `json:"mostRemovedProducts"`
	Products            []ProductResponse  `json:"products"`
}
