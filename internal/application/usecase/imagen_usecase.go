package usecase

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/application/ports"
	"github.com/jhoicas/fiapp/internal/domain"
)

var extensionesImagen = map[string]bool{"png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true}

// ImagenUseCase valida y guarda imágenes de productos.
type ImagenUseCase struct {
	storage  ports.ImageStorage
	maxBytes int64
	now      func() time.Time
}

// NewImagenUseCase construye el caso de uso. maxBytes <= 0 usa 5 MiB.
func NewImagenUseCase(storage ports.ImageStorage, maxBytes int64) *ImagenUseCase {
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	return &ImagenUseCase{storage: storage, maxBytes: maxBytes, now: time.Now}
}

// ExtensionPermitida indica si el nombre de archivo tiene una extensión de imagen aceptada.
func ExtensionPermitida(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext, extensionesImagen[ext]
}

// Guardar valida extensión, tamaño y contenido, y devuelve la URL pública de la imagen.
func (uc *ImagenUseCase) Guardar(ctx context.Context, up dto.ImagenUpload) (string, error) {
	ext, ok := ExtensionPermitida(up.Filename)
	if !ok {
		return "", domain.ErrImagenInvalida
	}
	size := up.Size
	if size <= 0 {
		size = int64(len(up.Data))
	}
	if size == 0 || size > uc.maxBytes || int64(len(up.Data)) > uc.maxBytes {
		return "", domain.ErrImagenInvalida
	}
	contentType := http.DetectContentType(up.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", domain.ErrImagenInvalida
	}
	return uc.storage.Guardar(ctx, nuevoNombreImagen(ext, uc.now()), contentType, up.Data)
}
