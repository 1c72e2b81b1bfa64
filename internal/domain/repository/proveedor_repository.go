package repository

import (
	"context"

	"github.com/jhoicas/fiapp/internal/domain/entity"
)

// ProveedorRepository define el puerto de persistencia para proveedores.
type ProveedorRepository interface {
	Save(ctx context.Context, p *entity.Proveedor) error
	GetByID(ctx context.Context, id string) (*entity.Proveedor, error)
	Update(ctx context.Context, id string, campos map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Proveedor, error)
}
