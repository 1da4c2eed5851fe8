package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ScanStock-api/internal/application/dto"
	"github.com/jhoicas/ScanStock-api/internal/domain"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
	"github.com/jhoicas/ScanStock-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login por clave secreta estática: cada bodeguero tiene una clave
// propia cuyo hash bcrypt vive en el documento. No hay registro por API; las
// claves se siembran con cmd/seed.
type AuthUseCase struct {
	warehousemans repository.WarehousemanRepository
	jwtCfg        JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(warehousemans repository.WarehousemanRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{warehousemans: warehousemans, jwtCfg: jwtCfg}
}

// Login compara la clave contra el hash de cada bodeguero, y si alguna coincide
// genera el JWT y devuelve token + identidad. La clave no identifica al usuario
// por sí sola (no hay campo "usuario"), así que se recorre la lista completa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.SecretKey == "" {
		return nil, domain.ErrUnauthorized
	}
	all, err := uc.warehousemans.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range all {
		if err := bcrypt.CompareHashAndPassword([]byte(w.SecretKeyHash), []byte(in.SecretKey)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				continue
			}
			return nil, err
		}
		token, err := jwt.Generate(uc.jwtCfg.Secret, w.ID, w.WarehouseID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			Token: token,
			User: dto.WarehousemanResponse{
				ID:          w.ID,
				Name:        w.Name,
				WarehouseID: w.WarehouseID,
			},
		}, nil
	}
	return nil, domain.ErrUnauthorized
}
