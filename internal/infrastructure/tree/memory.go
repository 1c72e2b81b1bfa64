package tree

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/fiapp/internal/domain/repository"
)

var _ repository.TreeStore = (*MemoryStore)(nil)

// MemoryStore guarda el árbol en memoria. Con archivo, cada escritura se persiste como JSON.
type MemoryStore struct {
	mu   sync.RWMutex
	root any
	file string
}

// NewMemoryStore crea un árbol vacío sin persistencia (tests, desarrollo).
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// OpenFile carga (o crea) un árbol persistido en el archivo JSON dado.
func OpenFile(path string) (*MemoryStore, error) {
	s := &MemoryStore{file: path}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("tree: leer %s: %w", path, err)
	}
	if len(b) == 0 {
		return s, nil
	}
	var root any
	if err := json.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("tree: archivo %s corrupto: %w", path, err)
	}
	s.root = Prune(root)
	return s, nil
}

func (s *MemoryStore) Get(_ context.Context, path string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Clone(GetIn(s.root, Split(path))), nil
}

func (s *MemoryStore) Set(_ context.Context, path string, value any) error {
	norm, err := Normalize(value)
	if err != nil {
		return err
	}
	return s.aplicar(func(root any) any { return SetIn(root, Split(path), norm) })
}

func (s *MemoryStore) Update(_ context.Context, path string, values map[string]any) error {
	norm := make(map[string]any, len(values))
	for k, v := range values {
		n, err := Normalize(v)
		if err != nil {
			return err
		}
		norm[k] = n
	}
	return s.aplicar(func(root any) any { return UpdateIn(root, Split(path), norm) })
}

func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	return s.Set(ctx, path, nil)
}

// aplicar ejecuta cambio bajo el lock. Con archivo, el cambio se hace sobre una copia
// que solo reemplaza al árbol en memoria si se pudo persistir.
func (s *MemoryStore) aplicar(cambio func(root any) any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == "" {
		s.root = cambio(s.root)
		return nil
	}
	next := cambio(Clone(s.root))
	if err := s.persist(next); err != nil {
		return err
	}
	s.root = next
	return nil
}

// persist escribe root de forma atómica (archivo temporal + rename).
func (s *MemoryStore) persist(root any) error {
	if root == nil {
		root = map[string]any{}
	}
	b, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("tree: serializar: %w", err)
	}
	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tree: crear %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".fiapp-*.json")
	if err != nil {
		return fmt.Errorf("tree: archivo temporal: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("tree: escribir: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("tree: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.file); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("tree: reemplazar %s: %w", s.file, err)
	}
	return nil
}
