package entity

// Warehouseman operador del almacén. Se autentica con una clave secreta estática;
// en el documento solo se guarda el hash bcrypt de la clave, nunca la clave plana.
type Warehouseman struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	SecretKeyHash string `json:"secretKeyHash"`
	WarehouseID   int64  `json:"warehouseId"`
}
