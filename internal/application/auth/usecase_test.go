package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ScanStock-api/internal/application/auth"
	"github.com/jhoicas/ScanStock-api/internal/application/dto"
	"github.com/jhoicas/ScanStock-api/internal/domain"
	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/ScanStock-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testIssuer    = "scanstock-test"
	testKeyHiba   = "AH90907J"
	testKeyYassin = "PM19283K"
)

type stubWarehousemanRepo struct {
	warehousemans []*entity.Warehouseman
}

func (r *stubWarehousemanRepo) GetByID(_ context.Context, id int64) (*entity.Warehouseman, error) {
	for _, w := range r.warehousemans {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubWarehousemanRepo) List(_ context.Context) ([]*entity.Warehouseman, error) {
	return r.warehousemans, nil
}

func hashKey(t *testing.T, key string) string {
	t.Helper()
	// MinCost para que la suite no pague el costo real de bcrypt.
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	repo := &stubWarehousemanRepo{warehousemans: []*entity.Warehouseman{
		{ID: 1000, Name: "Hiba Chaari", SecretKeyHash: hashKey(t, testKeyHiba), WarehouseID: 1999},
		{ID: 1001, Name: "Yassine Benali", SecretKeyHash: hashKey(t, testKeyYassin), WarehouseID: 2991},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ClaveCorrecta_DevuelveTokenEIdentidad(t *testing.T) {
	uc := newAuthUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{SecretKey: testKeyYassin})
	require.NoError(t, err)

	assert.Equal(t, int64(1001), resp.User.ID)
	assert.Equal(t, "Yassine Benali", resp.User.Name)
	assert.Equal(t, int64(2991), resp.User.WarehouseID)
	require.NotEmpty(t, resp.Token)

	// El token lleva los IDs correctos del bodeguero autenticado.
	warehousemanID, warehouseID, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), warehousemanID)
	assert.Equal(t, int64(2991), warehouseID)
}

func TestLogin_LaClaveIdentificaAlBodeguero(t *testing.T) {
	uc := newAuthUseCase(t)

	// No hay campo usuario: cada clave debe resolver a su dueño.
	r1, err := uc.Login(context.Background(), dto.LoginRequest{SecretKey: testKeyHiba})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), r1.User.ID)

	r2, err := uc.Login(context.Background(), dto.LoginRequest{SecretKey: testKeyYassin})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), r2.User.ID)
}

func TestLogin_ClaveIncorrecta(t *testing.T) {
	uc := newAuthUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{SecretKey: "CLAVE-FALSA"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_ClaveVacia(t *testing.T) {
	uc := newAuthUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{SecretKey: ""})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"clave vacía debe rechazarse sin comparar hashes")
}

func TestLogin_SinBodegueros(t *testing.T) {
	uc := auth.NewAuthUseCase(&stubWarehousemanRepo{}, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer,
	})
	_, err := uc.Login(context.Background(), dto.LoginRequest{SecretKey: testKeyHiba})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
