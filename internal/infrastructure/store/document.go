// Package store implementa el almacén de documento único del inventario:
// todo el estado (productos + bodegueros) vive en memoria como un Document y
// se persiste completo y de forma atómica a través de un Backend intercambiable
// (archivo JSON plano o fila jsonb en PostgreSQL).
//
// Modelo de concurrencia:
//   - Lecturas: snapshot con copia (RWMutex); ningún lector ve escrituras a medias.
//   - Mutación: WithProduct serializa lectura-verificación-escritura por producto
//     (mutex por ID de producto); productos distintos avanzan en paralelo.
//   - Persistencia: un solo escritor (mutex global); el estado en memoria solo se
//     compromete después de que Replace tuvo éxito, así un fallo de persistencia
//     deja visible el último estado comprometido.
package store

import (
	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
)

// Document estado completo del almacén. Es el equivalente tipado del db.json
// original: un único documento con las dos colecciones.
type Document struct {
	Products      []*entity.Product      `json:"products"`
	Warehousemans []*entity.Warehouseman `json:"warehousemans"`
}

// emptyDocument documento inicial cuando el backend aún no tiene estado.
func emptyDocument() *Document {
	return &Document{
		Products:      []*entity.Product{},
		Warehousemans: []*entity.Warehouseman{},
	}
}
