package treedb

import (
	"context"
	"fmt"

	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo persiste clientes en locales/{local}/clientes/{user_id}.
type ClienteRepo struct {
	store repository.TreeStore
}

func NewClienteRepository(store repository.TreeStore) *ClienteRepo {
	return &ClienteRepo{store: store}
}

func (r *ClienteRepo) Save(ctx context.Context, localID string, c *entity.ClienteLocal) error {
	if err := r.store.Set(ctx, clientePath(localID, c.ID), c.ToMap()); err != nil {
		return fmt.Errorf("guardar cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(ctx context.Context, localID, id string) (*entity.ClienteLocal, error) {
	v, err := r.store.Get(ctx, clientePath(localID, id))
	if err != nil {
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	m, _ := v.(map[string]any)
	return entity.ClienteLocalFromMap(id, m), nil
}

func (r *ClienteRepo) Delete(ctx context.Context, localID, id string) error {
	if err := r.store.Delete(ctx, clientePath(localID, id)); err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) ListByLocal(ctx context.Context, localID string) ([]*entity.ClienteLocal, error) {
	v, err := r.store.Get(ctx, clientesPath(localID))
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	keys, docs := hijos(v)
	out := make([]*entity.ClienteLocal, 0, len(keys))
	for _, k := range keys {
		out = append(out, entity.ClienteLocalFromMap(k, docs[k]))
	}
	return out, nil
}

func (r *ClienteRepo) GetDeudaRaw(ctx context.Context, localID, id string) (any, error) {
	v, err := r.store.Get(ctx, tree.Join(clientePath(localID, id), "deuda"))
	if err != nil {
		return nil, fmt.Errorf("get deuda: %w", err)
	}
	return v, nil
}

func (r *ClienteRepo) SetDeuda(ctx context.Context, localID, id string, deuda float64) error {
	if err := r.store.Update(ctx, clientePath(localID, id), map[string]any{"deuda": deuda}); err != nil {
		return fmt.Errorf("actualizar deuda: %w", err)
	}
	return nil
}

func (r *ClienteRepo) Deudas(ctx context.Context, localID, id string) (map[string]entity.DeudaItem, error) {
	v, err := r.store.Get(ctx, tree.Join(clientePath(localID, id), "deudas"))
	if err != nil {
		return nil, fmt.Errorf("get historial: %w", err)
	}
	m, _ := v.(map[string]any)
	return entity.DeudasFromMap(m), nil
}

// AddDeudaItem escribe la entrada bajo deudas/{item.Clave}.
func (r *ClienteRepo) AddDeudaItem(ctx context.Context, localID, id string, item entity.DeudaItem) error {
	path := tree.Join(clientePath(localID, id), "deudas", item.Clave)
	if err := r.store.Set(ctx, path, item.ToMap()); err != nil {
		return fmt.Errorf("registrar deuda: %w", err)
	}
	return nil
}
