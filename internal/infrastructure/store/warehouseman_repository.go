package store

import (
	"context"

	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
)

// Verificación en compilación de que WarehousemanRepo cumple el puerto.
var _ repository.WarehousemanRepository = (*WarehousemanRepo)(nil)

// WarehousemanRepo implementa repository.WarehousemanRepository sobre el Store.
type WarehousemanRepo struct {
	s *Store
}

// NewWarehousemanRepository construye el repositorio.
func NewWarehousemanRepository(s *Store) *WarehousemanRepo {
	return &WarehousemanRepo{s: s}
}

// GetByID busca un bodeguero por ID.
func (r *WarehousemanRepo) GetByID(_ context.Context, id int64) (*entity.Warehouseman, error) {
	return r.s.getWarehouseman(id)
}

// List devuelve todos los bodegueros (el login recorre la lista comparando claves).
func (r *WarehousemanRepo) List(_ context.Context) ([]*entity.Warehouseman, error) {
	return r.s.listWarehousemans(), nil
}
