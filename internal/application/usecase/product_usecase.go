package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ScanStock-api/internal/application/dto"
	"github.com/jhoicas/ScanStock-api/internal/domain"
	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
)

// ProductUseCase casos de uso de catálogo: crear, listar y buscar por código de
// barras. Los ajustes de cantidad NO pasan por aquí: van por el ledger de deltas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y crea un producto. Todos los campos son obligatorios, incluida
// al menos una ubicación de stock; devuelve ErrValidation si falta alguno y
// ErrDuplicateBarcode si el código de barras ya existe. Si warehousemanID > 0
// el producto nace con un EditRecord de ese bodeguero.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, warehousemanID int64) (*dto.ProductResponse, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	draft := &entity.Product{
		Name:     in.Name,
		Type:     in.Type,
		Barcode:  in.Barcode,
		Price:    *in.Price,
		Solde:    *in.Solde,
		Supplier: in.Supplier,
		Image:    in.Image,
	}
	for _, s := range in.Stocks {
		draft.Stocks = append(draft.Stocks, entity.StockLocation{
			Name:     s.Name,
			Quantity: s.Quantity,
			Localisation: entity.Localisation{
				City:      s.Localisation.City,
				Latitude:  s.Localisation.Latitude,
				Longitude: s.Localisation.Longitude,
			},
		})
	}
	if warehousemanID > 0 {
		draft.EditedBy = []entity.EditRecord{{WarehousemanID: warehousemanID, At: time.Now()}}
	}

	created, err := uc.repo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(created)
	return &out, nil
}

// GetByBarcode busca el producto escaneado. El código de barras es una clave
// opaca: la única validación es que no venga vacío.
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	if barcode == "" {
		return nil, domain.ErrValidation
	}
	p, err := uc.repo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// GetByID busca un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// List devuelve todos los productos en orden de inserción.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Entities devuelve las entidades crudas (para el reporte PDF).
func (uc *ProductUseCase) Entities(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.List(ctx)
}

func validateCreate(in dto.CreateProductRequest) error {
	switch {
	case in.Name == "", in.Type == "", in.Barcode == "",
		in.Supplier == "", in.Image == "",
		in.Price == nil, in.Solde == nil,
		len(in.Stocks) == 0:
		return domain.ErrValidation
	}
	if in.Price.IsNegative() || in.Solde.IsNegative() {
		return domain.ErrValidation
	}
	for _, s := range in.Stocks {
		if s.Name == "" || s.Quantity < 0 {
			return domain.ErrValidation
		}
	}
	return nil
}
