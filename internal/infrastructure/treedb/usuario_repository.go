package treedb

import (
	"context"
	"fmt"

	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo persiste usuarios en usuarios/{md5(email)}.
type UsuarioRepo struct {
	store repository.TreeStore
}

// NewUsuarioRepository construye el repositorio sobre el árbol dado.
func NewUsuarioRepository(store repository.TreeStore) *UsuarioRepo {
	return &UsuarioRepo{store: store}
}

func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	v, err := r.store.Get(ctx, usuarioPath(email))
	if err != nil {
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	m, _ := v.(map[string]any)
	return entity.UsuarioFromMap(m), nil
}

func (r *UsuarioRepo) Save(ctx context.Context, u *entity.Usuario) error {
	if err := r.store.Set(ctx, usuarioPath(u.Email), u.ToMap()); err != nil {
		return fmt.Errorf("guardar usuario: %w", err)
	}
	return nil
}

// ExisteUserID recorre todos los usuarios buscando el user_id.
func (r *UsuarioRepo) ExisteUserID(ctx context.Context, userID string) (bool, error) {
	usuarios, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range usuarios {
		if u.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	v, err := r.store.Get(ctx, raizUsuarios)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	keys, docs := hijos(v)
	out := make([]*entity.Usuario, 0, len(keys))
	for _, k := range keys {
		out = append(out, entity.UsuarioFromMap(docs[k]))
	}
	return out, nil
}

func (r *UsuarioRepo) Delete(ctx context.Context, email string) error {
	if err := r.store.Delete(ctx, usuarioPath(email)); err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	return nil
}
