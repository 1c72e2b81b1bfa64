package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

// LocalUseCase casos de uso de locales (tiendas) de un tendero.
type LocalUseCase struct {
	repo repository.LocalRepository
	now  func() time.Time
}

// NewLocalUseCase construye el caso de uso.
func NewLocalUseCase(repo repository.LocalRepository) *LocalUseCase {
	return &LocalUseCase{repo: repo, now: time.Now}
}

// Crear registra un local con id local_{propietario}_{unix}.
func (uc *LocalUseCase) Crear(ctx context.Context, nombre, propietarioID string) (*entity.Local, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" || propietarioID == "" {
		return nil, domain.ErrInvalidInput
	}
	l := &entity.Local{
		ID:            nuevoLocalID(propietarioID, uc.now()),
		Nombre:        nombre,
		PropietarioID: propietarioID,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *LocalUseCase) Obtener(ctx context.Context, id string) (*entity.Local, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrLocalNoEncontrado
	}
	return l, nil
}

// Actualizar cambia el nombre del local.
func (uc *LocalUseCase) Actualizar(ctx context.Context, id, nombre string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return domain.ErrInvalidInput
	}
	if _, err := uc.Obtener(ctx, id); err != nil {
		return err
	}
	return uc.repo.UpdateNombre(ctx, id, nombre)
}

// Eliminar borra el local con sus productos y clientes.
func (uc *LocalUseCase) Eliminar(ctx context.Context, id string) error {
	if _, err := uc.Obtener(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// ListarPorPropietario recorre todos los locales y filtra por propietario_id.
func (uc *LocalUseCase) ListarPorPropietario(ctx context.Context, propietarioID string) ([]*entity.Local, error) {
	todos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Local, 0, len(todos))
	for _, l := range todos {
		if l.PropietarioID == propietarioID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (uc *LocalUseCase) ListarTodos(ctx context.Context) ([]*entity.Local, error) {
	return uc.repo.List(ctx)
}

// NombreOId devuelve el nombre del local para las vistas, o el id si no hay nombre.
func (uc *LocalUseCase) NombreOId(ctx context.Context, id string) string {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil || l == nil || l.Nombre == "" {
		return id
	}
	return l.Nombre
}
