package repository

import (
	"context"

	"github.com/jhoicas/fiapp/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para productos de un local.
type ProductoRepository interface {
	Save(ctx context.Context, localID string, p *entity.Producto) error
	GetByID(ctx context.Context, localID, id string) (*entity.Producto, error)
	// Update fusiona los campos dados; un valor nil elimina el campo.
	Update(ctx context.Context, localID, id string, campos map[string]any) error
	Delete(ctx context.Context, localID, id string) error
	ListByLocal(ctx context.Context, localID string) ([]*entity.Producto, error)
}
