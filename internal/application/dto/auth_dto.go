package dto

// LoginRequest autenticación por clave secreta estática del bodeguero.
type LoginRequest struct {
	SecretKey string `json:"secretKey"`
}

// WarehousemanResponse identidad pública del bodeguero autenticado.
type WarehousemanResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	WarehouseID int64  `json:"warehouseId"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string               `json:"token"`
	User  WarehousemanResponse `json:"user"`
}
