package ledger_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ScanStock-api/internal/application/attribution"
	"github.com/jhoicas/ScanStock-api/internal/application/ledger"
	"github.com/jhoicas/ScanStock-api/internal/domain"
	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
	"github.com/jhoicas/ScanStock-api/internal/infrastructure/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testWarehousemanID int64 = 1000

// newLedger monta store de archivo + atribución + ledger, y crea un producto
// con una ubicación de cantidad inicial qty. Devuelve ledger, repo y producto.
func newLedger(t *testing.T, qty int64) (*ledger.UseCase, *store.ProductRepo, *entity.Product) {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(ctx, store.NewFileBackend(filepath.Join(t.TempDir(), "db.json")))
	require.NoError(t, err)
	repo := store.NewProductRepository(st)

	created, err := repo.Create(ctx, &entity.Product{
		Name:     "Laptop",
		Type:     "Informatique",
		Barcode:  "615489",
		Price:    decimal.NewFromInt(1000),
		Solde:    decimal.NewFromInt(900),
		Supplier: "HP",
		Image:    "https://example.com/laptop.jpg",
		Stocks: []entity.StockLocation{
			{Name: "Gueliz B2", Quantity: qty, Localisation: entity.Localisation{City: "Marrakesh"}},
		},
	})
	require.NoError(t, err)

	uc := ledger.NewUseCase(repo, attribution.NewService(repo), zerolog.Nop())
	return uc, repo, created
}

// ──────────────────────────────────────────────────────────────────────────────
// Deltas válidos
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelta_PositivoIncrementaCantidadYAddedCount(t *testing.T) {
	ctx := context.Background()
	uc, repo, p := newLedger(t, 5)
	locID := p.Stocks[0].ID

	newQty, err := uc.ApplyDelta(ctx, p.ID, locID, 3, testWarehousemanID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), newQty)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.Stocks[0].Quantity)
	assert.Equal(t, int64(3), got.Stocks[0].AddedCount, "delta positivo debe acumular en addedCount")
	assert.Equal(t, int64(0), got.Stocks[0].RemovedCount)
	require.Len(t, got.EditedBy, 1, "todo delta != 0 debe producir exactamente un registro de edición")
	assert.Equal(t, testWarehousemanID, got.EditedBy[0].WarehousemanID)
}

func TestApplyDelta_NegativoDecrementaCantidadYRemovedCount(t *testing.T) {
	ctx := context.Background()
	uc, repo, p := newLedger(t, 8)
	locID := p.Stocks[0].ID

	newQty, err := uc.ApplyDelta(ctx, p.ID, locID, -2, testWarehousemanID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), newQty)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Stocks[0].Quantity)
	assert.Equal(t, int64(0), got.Stocks[0].AddedCount)
	assert.Equal(t, int64(2), got.Stocks[0].RemovedCount, "delta negativo debe acumular |delta| en removedCount")
}

// Los contadores son monótonos: una secuencia +a, -b deja addedCount=a y
// removedCount=b, nunca se compensan entre sí.
func TestApplyDelta_ContadoresMonotonos(t *testing.T) {
	ctx := context.Background()
	uc, repo, p := newLedger(t, 0)
	locID := p.Stocks[0].ID

	_, err := uc.ApplyDelta(ctx, p.ID, locID, 10, testWarehousemanID)
	require.NoError(t, err)
	_, err = uc.ApplyDelta(ctx, p.ID, locID, -4, testWarehousemanID)
	require.NoError(t, err)
	_, err = uc.ApplyDelta(ctx, p.ID, locID, 2, testWarehousemanID)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.Stocks[0].Quantity)
	assert.Equal(t, int64(12), got.Stocks[0].AddedCount)
	assert.Equal(t, int64(4), got.Stocks[0].RemovedCount)
	assert.Len(t, got.EditedBy, 3, "tres deltas distintos de cero: tres registros de edición")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delta cero — no-op total
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelta_CeroEsNoOp(t *testing.T) {
	ctx := context.Background()
	uc, repo, p := newLedger(t, 5)
	locID := p.Stocks[0].ID

	newQty, err := uc.ApplyDelta(ctx, p.ID, locID, 0, testWarehousemanID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), newQty, "delta cero devuelve la cantidad actual")

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Stocks[0].AddedCount, "delta cero no toca contadores")
	assert.Equal(t, int64(0), got.Stocks[0].RemovedCount)
	assert.Empty(t, got.EditedBy, "delta cero no debe producir registro de edición")
}

func TestApplyDelta_CeroValidaExistencia(t *testing.T) {
	ctx := context.Background()
	uc, _, p := newLedger(t, 5)

	_, err := uc.ApplyDelta(ctx, p.ID, 99999, 0, testWarehousemanID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"delta cero sobre ubicación inexistente sigue siendo ErrNotFound")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelta_StockNegativoRechazadoSinMutar(t *testing.T) {
	ctx := context.Background()
	uc, repo, p := newLedger(t, 1)
	locID := p.Stocks[0].ID

	_, err := uc.ApplyDelta(ctx, p.ID, locID, -5, testWarehousemanID)
	require.ErrorIs(t, err, domain.ErrNegativeStock)

	// Rechazo atómico: ni cantidad, ni contadores, ni atribución.
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Stocks[0].Quantity)
	assert.Equal(t, int64(0), got.Stocks[0].RemovedCount)
	assert.Empty(t, got.EditedBy)
}

func TestApplyDelta_HastaCeroExactoPermitido(t *testing.T) {
	ctx := context.Background()
	uc, _, p := newLedger(t, 3)

	newQty, err := uc.ApplyDelta(ctx, p.ID, p.Stocks[0].ID, -3, testWarehousemanID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), newQty, "bajar exactamente a cero es válido")
}

func TestApplyDelta_DeltaInvalido(t *testing.T) {
	ctx := context.Background()
	uc, _, p := newLedger(t, 5)
	locID := p.Stocks[0].ID

	casos := map[string]float64{
		"NaN":         math.NaN(),
		"Inf":         math.Inf(1),
		"InfNegativo": math.Inf(-1),
		"NoEntero":    2.5,
	}
	for nombre, delta := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, err := uc.ApplyDelta(ctx, p.ID, locID, delta, testWarehousemanID)
			assert.ErrorIs(t, err, domain.ErrInvalidDelta)
		})
	}
}

func TestApplyDelta_ProductoOUbicacionInexistente(t *testing.T) {
	ctx := context.Background()
	uc, _, p := newLedger(t, 5)

	_, err := uc.ApplyDelta(ctx, 4242, p.Stocks[0].ID, 1, testWarehousemanID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = uc.ApplyDelta(ctx, p.ID, 99999, 1, testWarehousemanID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "ubicación inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia — los deltas componen
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelta_DeltasConcurrentesComponen(t *testing.T) {
	ctx := context.Background()
	uc, repo, p := newLedger(t, 0)
	locID := p.Stocks[0].ID

	// Dos "sesiones" concurrentes: una suma 30, la otra suma 20 en unidades de a 1.
	// El resultado debe ser 50, nunca el último en escribir.
	done := make(chan struct{}, 2)
	apply := func(n int) {
		for i := 0; i < n; i++ {
			_, err := uc.ApplyDelta(ctx, p.ID, locID, 1, testWarehousemanID)
			assert.NoError(t, err)
		}
		done <- struct{}{}
	}
	go apply(30)
	go apply(20)
	<-done
	<-done

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.Stocks[0].Quantity,
		"los ajustes relativos concurrentes deben componer")
	assert.Equal(t, int64(50), got.Stocks[0].AddedCount)
}
