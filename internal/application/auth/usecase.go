package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro, login y asignación de rol.
type AuthUseCase struct {
	usuarios   repository.UsuarioRepository
	hashScheme string
}

// NewAuthUseCase construye el caso de uso de auth. hashScheme vacío equivale a sha256.
func NewAuthUseCase(usuarios repository.UsuarioRepository, hashScheme string) *AuthUseCase {
	if hashScheme == "" {
		hashScheme = HashSHA256
	}
	return &AuthUseCase{usuarios: usuarios, hashScheme: hashScheme}
}

// Registrar crea un usuario sin rol. El email y el user_id deben ser únicos.
func (uc *AuthUseCase) Registrar(ctx context.Context, email, password, userID string) (*entity.Usuario, error) {
	email = strings.TrimSpace(email)
	userID = strings.TrimSpace(userID)
	if email == "" || password == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.UserIDValido(userID) {
		return nil, domain.ErrUserIDInvalido
	}

	existing, err := uc.usuarios.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	enUso, err := uc.usuarios.ExisteUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("verificar user_id: %w", err)
	}
	if enUso {
		return nil, domain.ErrUserIDEnUso
	}

	hash, err := hashPassword(uc.hashScheme, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entity.Usuario{
		Email:        email,
		PasswordHash: hash,
		UserID:       userID,
		TipoUsuario:  entity.RolSinAsignar,
	}
	if err := uc.usuarios.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica email/password. Cualquier fallo (email desconocido, contraseña incorrecta
// o error de lectura) devuelve ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*dto.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.usuarios.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !verifyPassword(user.PasswordHash, password) {
		return nil, domain.ErrUnauthorized
	}
	return &dto.LoginResult{
		UserID:      user.UserID,
		Email:       email,
		TipoUsuario: user.TipoUsuario,
	}, nil
}

// AsignarTipo fija el rol del usuario una sola vez. Repetir el mismo rol no hace nada.
func (uc *AuthUseCase) AsignarTipo(ctx context.Context, email, tipo string) error {
	rol, err := entity.ParseRol(strings.TrimSpace(tipo))
	if err != nil {
		return err
	}
	user, err := uc.usuarios.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.TipoUsuario == rol {
		return nil
	}
	if err := user.AsignarRol(rol); err != nil {
		return err
	}
	return uc.usuarios.Save(ctx, user)
}

// ObtenerPorEmail devuelve ErrUserNotFound si no existe.
func (uc *AuthUseCase) ObtenerPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	user, err := uc.usuarios.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (uc *AuthUseCase) ListarUsuarios(ctx context.Context) ([]*entity.Usuario, error) {
	return uc.usuarios.List(ctx)
}

func (uc *AuthUseCase) EliminarUsuario(ctx context.Context, email string) error {
	if _, err := uc.ObtenerPorEmail(ctx, email); err != nil {
		return err
	}
	return uc.usuarios.Delete(ctx, email)
}
