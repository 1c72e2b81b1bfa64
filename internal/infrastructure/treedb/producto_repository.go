package treedb

import (
	"context"
	"fmt"

	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo persiste productos en locales/{local}/productos/{id}.
type ProductoRepo struct {
	store repository.TreeStore
}

func NewProductoRepository(store repository.TreeStore) *ProductoRepo {
	return &ProductoRepo{store: store}
}

func (r *ProductoRepo) Save(ctx context.Context, localID string, p *entity.Producto) error {
	if err := r.store.Set(ctx, productoPath(localID, p.ID), p.ToMap()); err != nil {
		return fmt.Errorf("guardar producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) GetByID(ctx context.Context, localID, id string) (*entity.Producto, error) {
	v, err := r.store.Get(ctx, productoPath(localID, id))
	if err != nil {
		return nil, fmt.Errorf("get producto: %w", err)
	}
	m, _ := v.(map[string]any)
	return entity.ProductoFromMap(id, m), nil
}

func (r *ProductoRepo) Update(ctx context.Context, localID, id string, campos map[string]any) error {
	if err := r.store.Update(ctx, productoPath(localID, id), campos); err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) Delete(ctx context.Context, localID, id string) error {
	if err := r.store.Delete(ctx, productoPath(localID, id)); err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) ListByLocal(ctx context.Context, localID string) ([]*entity.Producto, error) {
	v, err := r.store.Get(ctx, productosPath(localID))
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	keys, docs := hijos(v)
	out := make([]*entity.Producto, 0, len(keys))
	for _, k := range keys {
		out = append(out, entity.ProductoFromMap(k, docs[k]))
	}
	return out, nil
}
