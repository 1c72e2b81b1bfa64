package ports

import "context"

// ImageStorage guarda imágenes de productos y devuelve la URL pública.
type ImageStorage interface {
	Guardar(ctx context.Context, nombre, contentType string, data []byte) (string, error)
}
