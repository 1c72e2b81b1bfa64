package treedb

import (
	"context"
	"fmt"

	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo persiste proveedores en proveedores/{id}.
type ProveedorRepo struct {
	store repository.TreeStore
}

func NewProveedorRepository(store repository.TreeStore) *ProveedorRepo {
	return &ProveedorRepo{store: store}
}

func (r *ProveedorRepo) Save(ctx context.Context, p *entity.Proveedor) error {
	if err := r.store.Set(ctx, proveedorPath(p.ID), p.ToMap()); err != nil {
		return fmt.Errorf("guardar proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) GetByID(ctx context.Context, id string) (*entity.Proveedor, error) {
	v, err := r.store.Get(ctx, proveedorPath(id))
	if err != nil {
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	m, _ := v.(map[string]any)
	p := entity.ProveedorFromMap(m)
	if p != nil && p.ID == "" {
		p.ID = id
	}
	return p, nil
}

func (r *ProveedorRepo) Update(ctx context.Context, id string, campos map[string]any) error {
	if err := r.store.Update(ctx, proveedorPath(id), campos); err != nil {
		return fmt.Errorf("actualizar proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, proveedorPath(id)); err != nil {
		return fmt.Errorf("eliminar proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) List(ctx context.Context) ([]*entity.Proveedor, error) {
	v, err := r.store.Get(ctx, raizProveedores)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	keys, docs := hijos(v)
	out := make([]*entity.Proveedor, 0, len(keys))
	for _, k := range keys {
		p := entity.ProveedorFromMap(docs[k])
		if p.ID == "" {
			p.ID = k
		}
		out = append(out, p)
	}
	return out, nil
}
