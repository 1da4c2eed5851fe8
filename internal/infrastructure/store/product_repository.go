package store

import (
	"context"

	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
)

// Verificación en compilación de que ProductRepo cumple el puerto.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementa repository.ProductRepository sobre el Store.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create asigna IDs y persiste el producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, draft *entity.Product) (*entity.Product, error) {
	return r.s.createProduct(ctx, draft)
}

// GetByID devuelve una copia snapshot del producto.
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return r.s.getProduct(id)
}

// GetByBarcode devuelve una copia snapshot del producto con ese código de barras.
func (r *ProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	return r.s.getProductByBarcode(barcode)
}

// List devuelve copias de todos los productos en orden de inserción.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.s.listProducts(), nil
}

// WithProduct lectura-modificación-escritura serializada por producto.
func (r *ProductRepo) WithProduct(ctx context.Context, id int64, fn func(p *entity.Product) error) error {
	return r.s.withProduct(ctx, id, fn)
}
