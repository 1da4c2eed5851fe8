package dto

import "github.com/jhoicas/ScanStock-api/internal/domain/entity"

// FromProduct mapea la entidad a su respuesta HTTP.
func FromProduct(p *entity.Product) ProductResponse {
	stocks := make([]StockLocationResponse, 0, len(p.Stocks))
	for _, loc := range p.Stocks {
		stocks = append(stocks, StockLocationResponse{
			ID:           loc.ID,
			Name:         loc.Name,
			Quantity:     loc.Quantity,
			AddedCount:   loc.AddedCount,
			RemovedCount: loc.RemovedCount,
			Localisation: LocalisationResponse{
				City:      loc.Localisation.City,
				Latitude:  loc.Localisation.Latitude,
				Longitude: loc.Localisation.Longitude,
			},
		})
	}
	edits := make([]EditRecordResponse, 0, len(p.EditedBy))
	for _, r := range p.EditedBy {
		edits = append(edits, EditRecordResponse{WarehousemanID: r.WarehousemanID, At: r.At})
	}
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Type:     p.Type,
		Barcode:  p.Barcode,
		Price:    p.Price,
		Solde:    p.Solde,
		Supplier: p.Supplier,
		Image:    p.Image,
		Stocks:   stocks,
		EditedBy: edits,
	}
}
