package treedb

import (
	"context"
	"fmt"

	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

var _ repository.LocalRepository = (*LocalRepo)(nil)

// LocalRepo persiste locales en locales/{id}.
type LocalRepo struct {
	store repository.TreeStore
}

func NewLocalRepository(store repository.TreeStore) *LocalRepo {
	return &LocalRepo{store: store}
}

func (r *LocalRepo) Create(ctx context.Context, l *entity.Local) error {
	if err := r.store.Set(ctx, localPath(l.ID), l.ToCreateMap()); err != nil {
		return fmt.Errorf("crear local: %w", err)
	}
	return nil
}

func (r *LocalRepo) GetByID(ctx context.Context, id string) (*entity.Local, error) {
	v, err := r.store.Get(ctx, localPath(id))
	if err != nil {
		return nil, fmt.Errorf("get local: %w", err)
	}
	m, _ := v.(map[string]any)
	return entity.LocalFromMap(id, m), nil
}

func (r *LocalRepo) UpdateNombre(ctx context.Context, id, nombre string) error {
	if err := r.store.Update(ctx, localPath(id), map[string]any{"nombre": nombre}); err != nil {
		return fmt.Errorf("actualizar local: %w", err)
	}
	return nil
}

func (r *LocalRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, localPath(id)); err != nil {
		return fmt.Errorf("eliminar local: %w", err)
	}
	return nil
}

// List trae el subárbol completo de locales.
func (r *LocalRepo) List(ctx context.Context) ([]*entity.Local, error) {
	v, err := r.store.Get(ctx, raizLocales)
	if err != nil {
		return nil, fmt.Errorf("listar locales: %w", err)
	}
	keys, docs := hijos(v)
	out := make([]*entity.Local, 0, len(keys))
	for _, k := range keys {
		out = append(out, entity.LocalFromMap(k, docs[k]))
	}
	return out, nil
}
