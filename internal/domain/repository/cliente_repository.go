package repository

import (
	"context"

	"github.com/jhoicas/fiapp/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para clientes de un local y su historial de deudas.
type ClienteRepository interface {
	Save(ctx context.Context, localID string, c *entity.ClienteLocal) error
	GetByID(ctx context.Context, localID, id string) (*entity.ClienteLocal, error)
	Delete(ctx context.Context, localID, id string) error
	ListByLocal(ctx context.Context, localID string) ([]*entity.ClienteLocal, error)

	// GetDeudaRaw devuelve el valor guardado en deuda tal cual (puede faltar o no ser numérico).
	GetDeudaRaw(ctx context.Context, localID, id string) (any, error)
	SetDeuda(ctx context.Context, localID, id string, deuda float64) error
	Deudas(ctx context.Context, localID, id string) (map[string]entity.DeudaItem, error)
	AddDeudaItem(ctx context.Context, localID, id string, item entity.DeudaItem) error
}
