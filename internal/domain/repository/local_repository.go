package repository

import (
	"context"

	"github.com/jhoicas/fiapp/internal/domain/entity"
)

// LocalRepository define el puerto de persistencia para locales.
type LocalRepository interface {
	Create(ctx context.Context, l *entity.Local) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Local, error)
	UpdateNombre(ctx context.Context, id, nombre string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Local, error)
}
