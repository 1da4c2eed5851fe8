package stats

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ScanStock-api/internal/application/dto"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
)

// Aggregator calcula el reporte de estadísticas por bodeguero a partir del
// estado del store y la atribución acumulada. El reporte es derivado, nunca se
// almacena, y es determinista para un estado fijo del store.
type Aggregator struct {
	products repository.ProductRepository
}

// NewAggregator construye el agregador.
func NewAggregator(products repository.ProductRepository) *Aggregator {
	return &Aggregator{products: products}
}

// Aggregate filtra los productos con al menos un EditRecord del bodeguero y
// calcula:
//
//   - totalProducts: productos incluidos.
//   - outOfStock: incluidos con TODAS sus ubicaciones en cantidad 0.
//   - totalStockValue: suma de cantidad × precio por ubicación (precio ausente
//     o cero aporta 0, no es error).
//   - mostAdded / mostRemoved: incluidos ordenados descendente por la suma de
//     AddedCount / RemovedCount; los empates conservan el orden de aparición
//     (sort estable).
func (a *Aggregator) Aggregate(ctx context.Context, warehousemanID int64) (*dto.StatisticsResponse, error) {
	all, err := a.products.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.StatisticsResponse{
		TotalStockValue:     decimal.Zero,
		MostAddedProducts:   []dto.RankedProductDTO{},
		MostRemovedProducts: []dto.RankedProductDTO{},
		Products:            []dto.ProductResponse{},
	}

	type ranked struct {
		productID int64
		name      string
		added     int64
		removed   int64
	}
	var included []ranked

	for _, p := range all {
		if !p.EditedByOperator(warehousemanID) {
			continue
		}
		report.TotalProducts++
		if p.OutOfStock() {
			report.OutOfStock++
		}

		var added, removed int64
		for _, loc := range p.Stocks {
			qty := decimal.NewFromInt(loc.Quantity)
			report.TotalStockValue = report.TotalStockValue.Add(qty.Mul(p.Price))
			added += loc.AddedCount
			removed += loc.RemovedCount
		}
		included = append(included, ranked{productID: p.ID, name: p.Name, added: added, removed: removed})
		report.Products = append(report.Products, dto.FromProduct(p))
	}

	byAdded := make([]ranked, len(included))
	copy(byAdded, included)
	sort.SliceStable(byAdded, func(i, j int) bool { return byAdded[i].added > byAdded[j].added })
	for _, r := range byAdded {
		report.MostAddedProducts = append(report.MostAddedProducts, dto.RankedProductDTO{
			ProductID: r.productID, Name: r.name, Total: r.added,
		})
	}

	byRemoved := make([]ranked, len(included))
	copy(byRemoved, included)
	sort.SliceStable(byRemoved, func(i, j int) bool { return byRemoved[i].removed > byRemoved[j].removed })
	for _, r := range byRemoved {
		report.MostRemovedProducts = append(report.MostRemovedProducts, dto.RankedProductDTO{
			ProductID: r.productID, Name: r.name, Total: r.removed,
		})
	}

	return report, nil
}
