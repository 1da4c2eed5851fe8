// Package ledger implementa el motor de deltas de stock: todo ajuste de
// cantidad es relativo (+n / -n), nunca una escritura absoluta, para que dos
// sesiones de edición concurrentes compongan en vez de pisarse (last-write-wins
// es justamente el bug que este motor elimina).
package ledger

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ScanStock-api/internal/application/attribution"
	"github.com/jhoicas/ScanStock-api/internal/domain"
	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
)

// UseCase aplica deltas de cantidad sobre ubicaciones de stock, con la lectura-
// verificación-escritura serializada por producto (WithProduct del repositorio).
type UseCase struct {
	products    repository.ProductRepository
	attribution *attribution.Service
	log         zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, attr *attribution.Service, log zerolog.Logger) *UseCase {
	return &UseCase{products: products, attribution: attr, log: log}
}

// ApplyDelta suma delta a la cantidad de la ubicación y devuelve la cantidad
// resultante.
//
//   - ErrInvalidDelta si delta no es un entero finito.
//   - ErrNotFound si el producto o la ubicación no existen.
//   - ErrNegativeStock si cantidad+delta < 0; se rechaza atómicamente, sin
//     mutación parcial.
//   - delta == 0 es un no-op total: sin contadores, sin EditRecord, sin persistir.
//
// Con delta > 0 incrementa AddedCount en delta; con delta < 0 incrementa
// RemovedCount en |delta|; en ambos casos agrega un EditRecord del bodeguero.
func (uc *UseCase) ApplyDelta(ctx context.Context, productID, stockLocationID int64, delta float64, warehousemanID int64) (int64, error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta != math.Trunc(delta) {
		return 0, domain.ErrInvalidDelta
	}
	d := int64(delta)

	if d == 0 {
		// No-op: se valida existencia y se devuelve la cantidad actual sin
		// tocar nada ni persistir.
		p, err := uc.products.GetByID(ctx, productID)
		if err != nil {
			return 0, err
		}
		loc := p.Location(stockLocationID)
		if loc == nil {
			return 0, domain.ErrNotFound
		}
		return loc.Quantity, nil
	}

	var newQuantity int64
	err := uc.products.WithProduct(ctx, productID, func(p *entity.Product) error {
		loc := p.Location(stockLocationID)
		if loc == nil {
			return domain.ErrNotFound
		}
		if loc.Quantity+d < 0 {
			return domain.ErrNegativeStock
		}
		loc.Quantity += d
		if d > 0 {
			loc.AddedCount += d
		} else {
			loc.RemovedCount += -d
		}
		uc.attribution.Append(p, warehousemanID, time.Now())
		newQuantity = loc.Quantity
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.log.Debug().
		Int64("product_id", productID).
		Int64("stock_location_id", stockLocationID).
		Int64("delta", d).
		Int64("new_quantity", newQuantity).
		Int64("warehouseman_id", warehousemanID).
		Msg("delta aplicado")
	return newQuantity, nil
}
