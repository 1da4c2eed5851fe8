package repository

import (
	"context"

	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven copias snapshot: ningún lector observa un producto
// escrito a medias.
type ProductRepository interface {
	// Create asigna ID (max existente + 1), IDs de ubicación (id*1000+ordinal)
	// y persiste. Devuelve domain.ErrDuplicateBarcode si el barcode ya existe.
	Create(ctx context.Context, draft *entity.Product) (*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	// List devuelve los productos en orden de inserción, estable entre lecturas.
	List(ctx context.Context) ([]*entity.Product, error)
	// WithProduct ejecuta fn con acceso exclusivo de lectura-modificación-escritura
	// sobre el producto (serializado por producto) y persiste el resultado de forma
	// atómica. Si fn o la persistencia fallan, el estado comprometido previo queda
	// intacto.
	WithProduct(ctx context.Context, id int64, fn func(p *entity.Product) error) error
}
