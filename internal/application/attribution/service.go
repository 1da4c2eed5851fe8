package attribution

import (
	"context"
	"time"

	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
)

// Service registra qué bodeguero editó qué producto y cuándo. Los registros se
// agregan siempre, sin deduplicar: las estadísticas cuentan frecuencia de
// edición por operador, así que cada delta calificado produce exactamente un
// registro.
type Service struct {
	products repository.ProductRepository
}

// NewService construye el servicio.
func NewService(products repository.ProductRepository) *Service {
	return &Service{products: products}
}

// Append agrega el registro sobre un producto ya abierto para mutación (dentro
// de un WithProduct del caller), sin persistir por su cuenta.
func (s *Service) Append(p *entity.Product, warehousemanID int64, at time.Time) {
	p.EditedBy = append(p.EditedBy, entity.EditRecord{
		WarehousemanID: warehousemanID,
		At:             at,
	})
}

// Record agrega un registro de edición de forma independiente y lo persiste.
// Solo falla con ErrNotFound si el producto no existe.
func (s *Service) Record(ctx context.Context, productID, warehousemanID int64, at time.Time) error {
	return s.products.WithProduct(ctx, productID, func(p *entity.Product) error {
		s.Append(p, warehousemanID, at)
		return nil
	})
}

// RecordsFor devuelve los registros de edición del producto en orden de
// inserción (cronológico).
func (s *Service) RecordsFor(ctx context.Context, productID int64) ([]entity.EditRecord, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return p.EditedBy, nil
}
