package report

import (
	"context"

	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
)

// ProductListPDFGenerator puerto hacia la infraestructura de PDF.
type ProductListPDFGenerator interface {
	GenerateProductListPDF(ctx context.Context, products []*entity.Product) ([]byte, error)
}

// PDFUseCase genera el reporte PDF del catálogo (la exportación que el
// escáner comparte desde la app).
type PDFUseCase struct {
	products  repository.ProductRepository
	generator ProductListPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(products repository.ProductRepository, generator ProductListPDFGenerator) *PDFUseCase {
	return &PDFUseCase{products: products, generator: generator}
}

// ProductListPDF genera el PDF con el catálogo completo.
func (uc *PDFUseCase) ProductListPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateProductListPDF(ctx, list)
}
