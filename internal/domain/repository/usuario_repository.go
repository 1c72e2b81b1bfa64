package repository

import (
	"context"

	"github.com/jhoicas/fiapp/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para usuarios (clave = hash del email).
type UsuarioRepository interface {
	// GetByEmail devuelve nil, nil si el email no está registrado.
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Save(ctx context.Context, u *entity.Usuario) error
	ExisteUserID(ctx context.Context, userID string) (bool, error)
	List(ctx context.Context) ([]*entity.Usuario, error)
	Delete(ctx context.Context, email string) error
}
