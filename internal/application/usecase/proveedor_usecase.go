package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

// ProveedorUseCase casos de uso de proveedores, cada uno asociado al tendero que lo creó.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
	now  func() time.Time
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo, now: time.Now}
}

// Crear registra un proveedor con id prov_{unix}_{hex8}. Contacto y email son opcionales.
func (uc *ProveedorUseCase) Crear(ctx context.Context, nombre, contacto, email, propietarioID string) (*entity.Proveedor, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Proveedor{
		ID:            nuevoProveedorID(uc.now()),
		Nombre:        nombre,
		Contacto:      strings.TrimSpace(contacto),
		Email:         strings.TrimSpace(email),
		PropietarioID: propietarioID,
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Listar devuelve solo los proveedores cuyo propietario_id coincide.
func (uc *ProveedorUseCase) Listar(ctx context.Context, propietarioID string) ([]*entity.Proveedor, error) {
	todos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Proveedor, 0, len(todos))
	for _, p := range todos {
		if p.PropietarioID == propietarioID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (uc *ProveedorUseCase) ListarTodos(ctx context.Context) ([]*entity.Proveedor, error) {
	return uc.repo.List(ctx)
}

func (uc *ProveedorUseCase) Obtener(ctx context.Context, id string) (*entity.Proveedor, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProveedorNoEncontrado
	}
	return p, nil
}

// Actualizar aplica solo los campos no vacíos.
func (uc *ProveedorUseCase) Actualizar(ctx context.Context, id, nombre, contacto, email string) error {
	if _, err := uc.Obtener(ctx, id); err != nil {
		return err
	}
	campos := map[string]any{}
	if v := strings.TrimSpace(nombre); v != "" {
		campos["nombre"] = v
	}
	if v := strings.TrimSpace(contacto); v != "" {
		campos["contacto"] = v
	}
	if v := strings.TrimSpace(email); v != "" {
		campos["email"] = v
	}
	if len(campos) == 0 {
		return nil
	}
	return uc.repo.Update(ctx, id, campos)
}

func (uc *ProveedorUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// IndexarProveedores arma el mapa id → proveedor usado por vistas y la API.
func IndexarProveedores(list []*entity.Proveedor) map[string]*entity.Proveedor {
	out := make(map[string]*entity.Proveedor, len(list))
	for _, p := range list {
		out[p.ID] = p
	}
	return out
}
