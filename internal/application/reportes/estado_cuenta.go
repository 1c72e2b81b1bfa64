package reportes

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiapp/internal/application/ports"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/domain/repository"
)

// EstadoCuentaUseCase genera el estado de cuenta de un cliente en un local.
type EstadoCuentaUseCase struct {
	locales repository.LocalRepository
	pdf     ports.EstadoCuentaGenerator
	now     func() time.Time
}

func NewEstadoCuentaUseCase(locales repository.LocalRepository, pdf ports.EstadoCuentaGenerator) *EstadoCuentaUseCase {
	return &EstadoCuentaUseCase{locales: locales, pdf: pdf, now: time.Now}
}

// SetClock reemplaza el reloj (tests).
func (uc *EstadoCuentaUseCase) SetClock(now func() time.Time) { uc.now = now }

// Armar reúne los datos del estado de cuenta sin renderizarlo.
func (uc *EstadoCuentaUseCase) Armar(ctx context.Context, localID, clienteID string) (*ports.EstadoCuenta, error) {
	l, err := uc.locales.GetByID(ctx, localID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrLocalNoEncontrado
	}
	c, ok := l.Clientes[clienteID]
	if !ok {
		return nil, domain.ErrClienteNoEncontrado
	}

	estado := &ports.EstadoCuenta{
		NombreLocal:   l.Nombre,
		LocalID:       l.ID,
		ClienteNombre: c.NombreVisible(),
		ClienteEmail:  c.Email,
		SaldoActual:   decimal.NewFromFloat(c.Deuda).Round(2),
		TotalCargado:  decimal.Zero,
		GeneradoEn:    uc.now(),
	}
	if estado.NombreLocal == "" {
		estado.NombreLocal = l.ID
	}
	for _, d := range entity.OrdenarDeudas(c.Deudas) {
		m := ports.MovimientoEstado{
			Fecha:     d.Fecha(),
			Monto:     decimal.NewFromFloat(d.Monto),
			PlazoDias: d.PlazoDias,
		}
		if v, ok := d.Vencimiento(); ok {
			m.Vencimiento = &v
		}
		estado.TotalCargado = estado.TotalCargado.Add(m.Monto)
		estado.Movimientos = append(estado.Movimientos, m)
	}
	estado.TotalCargado = estado.TotalCargado.Round(2)
	return estado, nil
}

// Generar devuelve el PDF del estado de cuenta.
func (uc *EstadoCuentaUseCase) Generar(ctx context.Context, localID, clienteID string) ([]byte, error) {
	estado, err := uc.Armar(ctx, localID, clienteID)
	if err != nil {
		return nil, err
	}
	b, err := uc.pdf.Generar(estado)
	if err != nil {
		return nil, fmt.Errorf("generar estado de cuenta: %w", err)
	}
	return b, nil
}
