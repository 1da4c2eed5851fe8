package repository

import (
	"context"

	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
)

// WarehousemanRepository define el puerto de lectura de bodegueros (solo login).
type WarehousemanRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Warehouseman, error)
	List(ctx context.Context) ([]*entity.Warehouseman, error)
}
