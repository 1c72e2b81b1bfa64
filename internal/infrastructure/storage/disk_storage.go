// Package storage guarda las imágenes de productos en disco local o en un bucket S3 compatible.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/fiapp/internal/application/ports"
)

var _ ports.ImageStorage = (*DiskStorage)(nil)

// DiskStorage escribe en {dir}/productos y sirve bajo publicPrefix (/static/productos).
type DiskStorage struct {
	dir          string
	publicPrefix string
}

func NewDiskStorage(staticDir, publicPrefix string) *DiskStorage {
	return &DiskStorage{
		dir:          filepath.Join(staticDir, "productos"),
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

// Guardar escribe el archivo y devuelve su URL pública.
func (s *DiskStorage) Guardar(_ context.Context, nombre, _ string, data []byte) (string, error) {
	if err := validarNombre(nombre); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: crear carpeta: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, nombre), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir %s: %w", nombre, err)
	}
	return s.publicPrefix + "/" + nombre, nil
}

func validarNombre(nombre string) error {
	if nombre == "" || nombre != filepath.Base(nombre) || strings.ContainsAny(nombre, `/\`) || strings.HasPrefix(nombre, ".") {
		return fmt.Errorf("storage: nombre de archivo inválido %q", nombre)
	}
	return nil
}
