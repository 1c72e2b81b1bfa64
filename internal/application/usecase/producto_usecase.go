package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos de un local.
type ProductoUseCase struct {
	repo repository.ProductoRepository
	now  func() time.Time
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, now: time.Now}
}

// Crear agrega un producto con id prod_{unix}_{hex6}.
func (uc *ProductoUseCase) Crear(ctx context.Context, localID string, in dto.ProductoInput) (*entity.Producto, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Producto{
		ID:        nuevoProductoID(uc.now()),
		Nombre:    nombre,
		Precio:    in.Precio,
		Stock:     in.Stock,
		ImagenURL: in.ImagenURL,
		Proveedor: strings.TrimSpace(in.Proveedor),
	}
	if err := uc.repo.Save(ctx, localID, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProductoUseCase) Listar(ctx context.Context, localID string) ([]*entity.Producto, error) {
	return uc.repo.ListByLocal(ctx, localID)
}

func (uc *ProductoUseCase) Obtener(ctx context.Context, localID, id string) (*entity.Producto, error) {
	p, err := uc.repo.GetByID(ctx, localID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNoEncontrado
	}
	return p, nil
}

// Actualizar reemplaza nombre, precio y stock. Un proveedor vacío elimina el campo;
// la imagen solo cambia si se subió una nueva.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, localID, id string, in dto.ProductoInput) error {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return domain.ErrInvalidInput
	}
	if _, err := uc.Obtener(ctx, localID, id); err != nil {
		return err
	}
	campos := map[string]any{
		"nombre":    nombre,
		"precio":    in.Precio,
		"stock":     in.Stock,
		"proveedor": nil,
	}
	if p := strings.TrimSpace(in.Proveedor); p != "" {
		campos["proveedor"] = p
	}
	if in.ImagenURL != "" {
		campos["imagen_url"] = in.ImagenURL
	}
	return uc.repo.Update(ctx, localID, id, campos)
}

func (uc *ProductoUseCase) Eliminar(ctx context.Context, localID, id string) error {
	return uc.repo.Delete(ctx, localID, id)
}
