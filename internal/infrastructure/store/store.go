package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/ScanStock-api/internal/domain"
	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
)

// Store documento en memoria + backend de persistencia. Los repositorios de
// producto y bodeguero son vistas sobre este motor (NewProductRepository,
// NewWarehousemanRepository).
type Store struct {
	backend Backend

	mu  sync.RWMutex // protege doc
	doc *Document

	persistMu sync.Mutex // un solo escritor contra el backend
	productMu sync.Map   // productID -> *sync.Mutex
}

// Open carga el estado desde el backend y construye el store.
func Open(ctx context.Context, backend Backend) (*Store, error) {
	data, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar estado inicial: %w", err)
	}
	doc := emptyDocument()
	if len(data) > 0 {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("decodificar documento: %w", err)
		}
	}
	return &Store{backend: backend, doc: doc}, nil
}

// Persist vuelca el estado actual al backend (write-through explícito).
func (s *Store) Persist(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()
	return s.replace(ctx, doc)
}

// lockProduct devuelve el mutex del producto, creándolo si es la primera vez.
func (s *Store) lockProduct(id int64) *sync.Mutex {
	m, _ := s.productMu.LoadOrStore(id, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// findProduct busca por ID dentro del documento. Caller debe tener s.mu.
func (s *Store) findProduct(id int64) *entity.Product {
	for _, p := range s.doc.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) getProduct(id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.findProduct(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

func (s *Store) getProductByBarcode(barcode string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.doc.Products {
		if p.Barcode == barcode {
			return p.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) listProducts() []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(s.doc.Products))
	for _, p := range s.doc.Products {
		out = append(out, p.Clone())
	}
	return out
}

// createProduct asigna IDs (producto: max+1; ubicaciones: id*1000+ordinal en el
// orden de entrada) y persiste. Serializado con el resto de escrituras.
func (s *Store) createProduct(ctx context.Context, draft *entity.Product) (*entity.Product, error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	var maxID int64
	for _, p := range s.doc.Products {
		if p.Barcode == draft.Barcode {
			s.mu.RUnlock()
			return nil, domain.ErrDuplicateBarcode
		}
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	s.mu.RUnlock()

	created := draft.Clone()
	created.ID = maxID + 1
	for i := range created.Stocks {
		created.Stocks[i].ID = created.ID*1000 + int64(i+1)
	}
	if created.EditedBy == nil {
		created.EditedBy = []entity.EditRecord{}
	}

	candidate := s.snapshotDoc()
	candidate.Products = append(candidate.Products, created)
	if err := s.replace(ctx, candidate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.doc = candidate
	s.mu.Unlock()
	return created.Clone(), nil
}

// withProduct ejecuta fn sobre una copia del producto con exclusión por producto
// y, si fn tiene éxito, persiste y compromete la copia. Un fallo de fn o de la
// persistencia deja el estado comprometido previo intacto.
func (s *Store) withProduct(ctx context.Context, id int64, fn func(p *entity.Product) error) error {
	lock := s.lockProduct(id)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	current := s.findProduct(id)
	var work *entity.Product
	if current != nil {
		work = current.Clone()
	}
	s.mu.RUnlock()
	if work == nil {
		return domain.ErrNotFound
	}

	if err := fn(work); err != nil {
		return err
	}

	// La persistencia y el commit en memoria van juntos bajo el lock global:
	// el candidato serializado siempre contiene el último estado comprometido
	// de los demás productos.
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	candidate := s.snapshotDoc()
	replaced := false
	for i, p := range candidate.Products {
		if p.ID == id {
			candidate.Products[i] = work
			replaced = true
			break
		}
	}
	if !replaced {
		return domain.ErrNotFound
	}
	if err := s.replace(ctx, candidate); err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = candidate
	s.mu.Unlock()
	return nil
}

// snapshotDoc copia superficial del documento. Los punteros a productos nunca se
// mutan in situ (withProduct los reemplaza por clones), así que la copia de los
// slices basta. Caller debe tener persistMu para que sea consistente con el
// último commit.
func (s *Store) snapshotDoc() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := &Document{
		Products:      make([]*entity.Product, len(s.doc.Products)),
		Warehousemans: make([]*entity.Warehouseman, len(s.doc.Warehousemans)),
	}
	copy(cp.Products, s.doc.Products)
	copy(cp.Warehousemans, s.doc.Warehousemans)
	return cp
}

// replace serializa y reemplaza el documento en el backend.
func (s *Store) replace(ctx context.Context, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializar: %v", domain.ErrPersistence, err)
	}
	if err := s.backend.Replace(ctx, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (s *Store) getWarehouseman(id int64) (*entity.Warehouseman, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.doc.Warehousemans {
		if w.ID == id {
			cp := *w
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) listWarehousemans() []*entity.Warehouseman {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Warehouseman, 0, len(s.doc.Warehousemans))
	for _, w := range s.doc.Warehousemans {
		cp := *w
		out = append(out, &cp)
	}
	return out
}
