package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Backend medio de persistencia del documento. El contrato es mínimo a propósito:
// cargar el estado completo y reemplazarlo completo, ambos atómicos. Cualquier
// backend (archivo plano, fila jsonb, KV embebido) puede satisfacerlo.
type Backend interface {
	// Load devuelve el documento serializado, o nil si todavía no existe estado.
	Load(ctx context.Context) ([]byte, error)
	// Replace sustituye el documento completo. O se escribe todo o no se escribe
	// nada: un crash a mitad de Replace no debe dejar un estado parcial visible.
	Replace(ctx context.Context, data []byte) error
}

// FileBackend persiste el documento como un archivo JSON (el db.json original).
// Replace escribe a un archivo temporal en el mismo directorio y hace rename,
// que en un mismo filesystem es atómico.
type FileBackend struct {
	path string
}

// NewFileBackend construye el backend de archivo.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load lee el archivo; si no existe devuelve nil (documento vacío).
func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer documento %s: %w", b.path, err)
	}
	return data, nil
}

// Replace escribe el documento completo: temp + fsync + rename.
func (b *FileBackend) Replace(_ context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op si el rename tuvo éxito

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("rename %s: %w", b.path, err)
	}
	return nil
}
