// Package session implementa la sesión de reconciliación de un escaneo: foto de
// cantidades al cargar el producto, ediciones en memoria, y al guardar el diff
// mínimo (snapshot vs actual) se envía como deltas independientes por ubicación.
package session

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/ScanStock-api/internal/domain"
	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
)

// State estado de la sesión.
type State string

// Estados del ciclo de vida: Scanning → Loaded → Editing → Saving →
// {Committed, PartiallyFailed}.
const (
	StateScanning        State = "scanning"
	StateLoaded          State = "loaded"
	StateEditing         State = "editing"
	StateSaving          State = "saving"
	StateCommitted       State = "committed"
	StatePartiallyFailed State = "partially_failed"
)

// Ledger puerto hacia el motor de deltas.
type Ledger interface {
	ApplyDelta(ctx context.Context, productID, stockLocationID int64, delta float64, warehousemanID int64) (int64, error)
}

// Session estado efímero de una edición: nunca se persiste. Product es la copia
// viva que el usuario edita; Snapshot conserva las cantidades al momento del
// escaneo para calcular deltas relativos al guardar.
type Session struct {
	ID             uuid.UUID
	WarehousemanID int64
	Product        *entity.Product
	Snapshot       map[int64]int64
	State          State
}

// Load crea la sesión a partir del producto recién escaneado (Scanning → Loaded)
// y captura el snapshot de cantidades por ubicación.
func Load(product *entity.Product, warehousemanID int64) *Session {
	snap := make(map[int64]int64, len(product.Stocks))
	for _, loc := range product.Stocks {
		snap[loc.ID] = loc.Quantity
	}
	return &Session{
		ID:             uuid.New(),
		WarehousemanID: warehousemanID,
		Product:        product.Clone(),
		Snapshot:       snap,
		State:          StateLoaded,
	}
}

// Restore reconstruye una sesión en estado Editing a partir de un snapshot y
// cantidades finales enviados por el cliente (el flujo HTTP de guardado).
// Devuelve ErrNotFound si algún ID de ubicación no pertenece al producto.
func Restore(product *entity.Product, warehousemanID int64, snapshot, quantities map[int64]int64) (*Session, error) {
	s := Load(product, warehousemanID)
	for locID, qty := range snapshot {
		if s.Product.Location(locID) == nil {
			return nil, domain.ErrNotFound
		}
		s.Snapshot[locID] = qty
	}
	for locID, qty := range quantities {
		loc := s.Product.Location(locID)
		if loc == nil {
			return nil, domain.ErrNotFound
		}
		if qty < 0 {
			return nil, domain.ErrValidation
		}
		loc.Quantity = qty
	}
	s.State = StateEditing
	return s, nil
}

// Increment sube en 1 la cantidad en memoria de la ubicación (solo render;
// nada se envía hasta Save).
func (s *Session) Increment(stockLocationID int64) error {
	return s.edit(stockLocationID, +1)
}

// Decrement baja en 1 la cantidad en memoria. El valor mostrado no baja de 0.
func (s *Session) Decrement(stockLocationID int64) error {
	return s.edit(stockLocationID, -1)
}

func (s *Session) edit(stockLocationID, step int64) error {
	if s.State != StateLoaded && s.State != StateEditing {
		return domain.ErrValidation
	}
	loc := s.Product.Location(stockLocationID)
	if loc == nil {
		return domain.ErrNotFound
	}
	if loc.Quantity+step < 0 {
		return nil // la UI no permite mostrar cantidades negativas
	}
	loc.Quantity += step
	s.State = StateEditing
	return nil
}

// Delta ajuste pendiente de una ubicación.
type Delta struct {
	StockLocationID int64
	Delta           int64
}

// Diff calcula el conjunto mínimo de deltas entre el snapshot y el estado
// actual. Función pura: las ubicaciones sin cambio (delta 0) se omiten para no
// generar no-ops ni EditRecords redundantes.
func Diff(snapshot map[int64]int64, current []entity.StockLocation) []Delta {
	deltas := make([]Delta, 0, len(current))
	for _, loc := range current {
		base, ok := snapshot[loc.ID]
		if !ok {
			base = loc.Quantity // ubicación sin snapshot: nada que reconciliar
		}
		if d := loc.Quantity - base; d != 0 {
			deltas = append(deltas, Delta{StockLocationID: loc.ID, Delta: d})
		}
	}
	return deltas
}

// Deltas deltas pendientes de esta sesión.
func (s *Session) Deltas() []Delta {
	return Diff(s.Snapshot, s.Product.Stocks)
}

// LocationResult resultado de un delta individual dentro de un guardado.
type LocationResult struct {
	StockLocationID int64
	Delta           int64
	NewQuantity     int64
	Err             error
}

// SaveResult resultado del guardado completo.
type SaveResult struct {
	Committed bool
	Results   []LocationResult
}

// Save envía los deltas pendientes, cada uno como una llamada independiente al
// ledger, en paralelo (fan-out/fan-in). No hay transacción entre ubicaciones:
// los deltas que tuvieron éxito no se revierten si otro falla; el resultado
// indica qué ubicaciones fallaron para que el caller reintente solo esas. Para
// las ubicaciones con éxito el snapshot avanza a la cantidad enviada, así un
// reintento de la misma sesión recalcula delta 0 para ellas; para las fallidas
// el snapshot conserva la base original.
func (s *Session) Save(ctx context.Context, ledger Ledger) SaveResult {
	deltas := s.Deltas()
	s.State = StateSaving

	if len(deltas) == 0 {
		// Nada cambió: guardado no-op reportado como éxito.
		s.State = StateCommitted
		return SaveResult{Committed: true, Results: []LocationResult{}}
	}

	results := make([]LocationResult, len(deltas))
	var wg sync.WaitGroup
	for i, d := range deltas {
		wg.Add(1)
		go func(i int, d Delta) {
			defer wg.Done()
			newQty, err := ledger.ApplyDelta(ctx, s.Product.ID, d.StockLocationID, float64(d.Delta), s.WarehousemanID)
			results[i] = LocationResult{
				StockLocationID: d.StockLocationID,
				Delta:           d.Delta,
				NewQuantity:     newQty,
				Err:             err,
			}
		}(i, d)
	}
	wg.Wait()

	// Orden estable por ubicación para que el resultado sea reproducible.
	sort.Slice(results, func(a, b int) bool {
		return results[a].StockLocationID < results[b].StockLocationID
	})

	committed := true
	for _, r := range results {
		if r.Err != nil {
			committed = false
			continue
		}
		s.Snapshot[r.StockLocationID] += r.Delta
	}
	if committed {
		s.State = StateCommitted
	} else {
		s.State = StatePartiallyFailed
	}
	return SaveResult{Committed: committed, Results: results}
}
