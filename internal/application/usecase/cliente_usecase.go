package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

// ClienteUseCase gestiona los clientes de un local y sus deudas.
// Las operaciones de deuda leen y luego escriben, sin transacción.
type ClienteUseCase struct {
	clientes repository.ClienteRepository
	locales  repository.LocalRepository
	usuarios repository.UsuarioRepository
	now      func() time.Time
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(
	clientes repository.ClienteRepository,
	locales repository.LocalRepository,
	usuarios repository.UsuarioRepository,
) *ClienteUseCase {
	return &ClienteUseCase{clientes: clientes, locales: locales, usuarios: usuarios, now: time.Now}
}

// SetClock reemplaza el reloj (tests).
func (uc *ClienteUseCase) SetClock(now func() time.Time) { uc.now = now }

// Agregar registra en el local a un usuario existente con rol cliente y su deuda inicial.
func (uc *ClienteUseCase) Agregar(ctx context.Context, localID, email, deudaInicial string) (*entity.ClienteLocal, error) {
	email = strings.TrimSpace(email)
	deudaInicial = strings.TrimSpace(deudaInicial)
	if email == "" || deudaInicial == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.usuarios.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrClienteNoExiste
	}
	if user.TipoUsuario != entity.RolCliente {
		return nil, domain.ErrNoEsCliente
	}

	deuda, err := ParseMonto(deudaInicial)
	if err != nil {
		return nil, domain.ErrDeudaInicialInvalida
	}
	if deuda < 0 {
		return nil, domain.ErrDeudaNegativa
	}

	existente, err := uc.clientes.GetByID(ctx, localID, user.UserID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrClienteYaRegistrado
	}

	nombre := user.Email
	if nombre == "" {
		nombre = email
	}
	c := &entity.ClienteLocal{
		ID:     user.UserID,
		Email:  email,
		Nombre: nombre,
		Deuda:  deuda,
	}
	if err := uc.clientes.Save(ctx, localID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ClienteUseCase) Listar(ctx context.Context, localID string) ([]*entity.ClienteLocal, error) {
	return uc.clientes.ListByLocal(ctx, localID)
}

func (uc *ClienteUseCase) Obtener(ctx context.Context, localID, id string) (*entity.ClienteLocal, error) {
	c, err := uc.clientes.GetByID(ctx, localID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrClienteNoEncontrado
	}
	return c, nil
}

func (uc *ClienteUseCase) Eliminar(ctx context.Context, localID, id string) error {
	return uc.clientes.Delete(ctx, localID, id)
}

// ActualizarDeuda sobrescribe el saldo. raw puede ser número o texto.
func (uc *ClienteUseCase) ActualizarDeuda(ctx context.Context, localID, id string, raw any) (float64, error) {
	var deuda float64
	switch v := raw.(type) {
	case string:
		f, err := ParseMonto(v)
		if err != nil {
			return 0, domain.ErrDeudaNoNumerica
		}
		deuda = f
	case bool, nil:
		return 0, domain.ErrDeudaNoNumerica
	default:
		f, ok := entity.Numero(v)
		if !ok {
			return 0, domain.ErrDeudaNoNumerica
		}
		deuda = f
	}
	if deuda < 0 {
		return 0, domain.ErrDeudaNegativa
	}
	if err := uc.clientes.SetDeuda(ctx, localID, id, deuda); err != nil {
		return 0, err
	}
	return deuda, nil
}

// CancelarDeuda deja el saldo en cero sin importar el valor anterior.
func (uc *ClienteUseCase) CancelarDeuda(ctx context.Context, localID, id string) error {
	return uc.clientes.SetDeuda(ctx, localID, id, 0)
}

// Abonar descuenta un pago del saldo, sin bajar de cero.
func (uc *ClienteUseCase) Abonar(ctx context.Context, localID, id string, monto float64) (float64, error) {
	if !(monto > 0) || math.IsInf(monto, 0) {
		return 0, domain.ErrMontoInvalido
	}
	c, err := uc.Obtener(ctx, localID, id)
	if err != nil {
		return 0, err
	}
	nueva := decimal.NewFromFloat(c.Deuda).Sub(decimal.NewFromFloat(monto))
	if nueva.IsNegative() {
		nueva = decimal.Zero
	}
	return uc.ActualizarDeuda(ctx, localID, id, nueva.InexactFloat64())
}

// RegistrarDeuda suma monto al saldo y agrega una entrada al historial deudas/{unix}.
// Si el saldo guardado falta o no es numérico, el nuevo saldo es el monto.
// Dos registros en el mismo segundo usan claves {unix}-1, {unix}-2...
func (uc *ClienteUseCase) RegistrarDeuda(ctx context.Context, localID, id string, monto float64, plazoDias *int) (float64, error) {
	if !(monto > 0) || math.IsInf(monto, 0) {
		return 0, domain.ErrMontoInvalido
	}
	if plazoDias != nil && *plazoDias < 0 {
		return 0, domain.ErrInvalidInput
	}
	if _, err := uc.Obtener(ctx, localID, id); err != nil {
		return 0, err
	}

	raw, err := uc.clientes.GetDeudaRaw(ctx, localID, id)
	if err != nil {
		return 0, err
	}
	total := decimal.NewFromFloat(monto)
	if actual, ok := entity.Numero(raw); ok {
		total = total.Add(decimal.NewFromFloat(actual))
	}
	nueva := total.InexactFloat64()
	if err := uc.clientes.SetDeuda(ctx, localID, id, nueva); err != nil {
		return 0, err
	}

	historial, err := uc.clientes.Deudas(ctx, localID, id)
	if err != nil {
		return 0, err
	}
	ts := uc.now().Unix()
	clave := strconv.FormatInt(ts, 10)
	for n := 1; ; n++ {
		if _, ocupada := historial[clave]; !ocupada {
			break
		}
		clave = fmt.Sprintf("%d-%d", ts, n)
	}
	item := entity.DeudaItem{Clave: clave, Monto: monto, Timestamp: ts, PlazoDias: plazoDias}
	if err := uc.clientes.AddDeudaItem(ctx, localID, id, item); err != nil {
		return 0, err
	}
	return nueva, nil
}

// HistorialDeudas devuelve las entradas del historial ordenadas de la más antigua a la más reciente.
func (uc *ClienteUseCase) HistorialDeudas(ctx context.Context, localID, id string) ([]entity.DeudaItem, error) {
	m, err := uc.clientes.Deudas(ctx, localID, id)
	if err != nil {
		return nil, err
	}
	return entity.OrdenarDeudas(m), nil
}

// DeudasDeCliente recorre todos los locales y devuelve la deuda del cliente en cada uno donde está registrado.
func (uc *ClienteUseCase) DeudasDeCliente(ctx context.Context, clienteID string) (map[string]entity.ResumenDeuda, error) {
	locales, err := uc.locales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := map[string]entity.ResumenDeuda{}
	for _, l := range locales {
		if c, ok := l.Clientes[clienteID]; ok {
			out[l.ID] = entity.ResumenDeuda{NombreLocal: l.Nombre, DeudaTotal: c.Deuda}
		}
	}
	return out, nil
}

// DetalleParaCliente devuelve el local y el registro del cliente en él, para la vista del propio cliente.
func (uc *ClienteUseCase) DetalleParaCliente(ctx context.Context, localID, clienteID string) (*entity.Local, *entity.ClienteLocal, error) {
	l, err := uc.locales.GetByID(ctx, localID)
	if err != nil {
		return nil, nil, err
	}
	if l == nil {
		return nil, nil, domain.ErrLocalNoEncontrado
	}
	c, ok := l.Clientes[clienteID]
	if !ok {
		return nil, nil, domain.ErrClienteNoEncontrado
	}
	return l, c, nil
}

// ParseMonto convierte texto a float aceptando coma decimal. Rechaza NaN e infinitos.
func ParseMonto(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("monto no finito")
	}
	return f, nil
}
