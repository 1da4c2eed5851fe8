package dto

// ApplyDeltaRequest ajuste relativo de una ubicación de stock. Delta viaja como
// número JSON y se valida como entero finito (ErrInvalidDelta si no lo es):
// el ajuste es relativo a propósito, nunca un valor absoluto que pise ediciones
// concurrentes.
type ApplyDeltaRequest struct {
	Delta float64 `json:"delta"`
}

// ApplyDeltaResponse resultado de un ajuste individual.
type ApplyDeltaResponse struct {
	StockLocationID int64 `json:"stockLocationId"`
	NewQuantity     int64 `json:"newQuantity"`
}

// ReconcileRequest guardado de una sesión de edición: la foto de cantidades al
// escanear y las cantidades finales editadas. El servidor calcula los deltas
// mínimos y los aplica por ubicación de forma independiente.
type ReconcileRequest struct {
	Snapshot   map[int64]int64 `json:"snapshot"`
	Quantities map[int64]int64 `json:"quantities"`
}

// ReconcileLocationResult resultado por ubicación dentro de un guardado.
type ReconcileLocationResult struct {
	StockLocationID int64  `json:"stockLocationId"`
	Delta           int64  `json:"delta"`
	NewQuantity     int64  `json:"newQuantity,omitempty"`
	Error           string `json:"error,omitempty"`
}

// ReconcileResponse resultado del guardado completo. Committed es false cuando
// al menos una ubicación falló; las demás NO se revierten (sin transacción
// entre ubicaciones) y el cliente reintenta solo las fallidas.
type ReconcileResponse struct {
	Committed bool                      `json:"committed"`
	Results   []ReconcileLocationResult `json:"results"`
}
