package reportes_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiapp/internal/application/ports"
	"github.com/jhoicas/fiapp/internal/application/reportes"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
	"github.com/jhoicas/fiapp/internal/infrastructure/treedb"
)

type fakePDF struct {
	recibido *ports.EstadoCuenta
	err      error
}

func (f *fakePDF) Generar(e *ports.EstadoCuenta) ([]byte, error) {
	f.recibido = e
	return []byte("%PDF-fake"), f.err
}

func sembrar(t *testing.T) *tree.MemoryStore {
	t.Helper()
	store := tree.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "locales/l1", map[string]any{
		"nombre":         "Tienda Ana",
		"propietario_id": "ana",
		"clientes": map[string]any{
			"luis": map[string]any{
				"email": "luis@example.com",
				"deuda": 35.5,
				"deudas": map[string]any{
					"1700000100": map[string]any{"monto": 25.5, "timestamp": 1700000100, "plazo_dias": 15},
					"1700000000": map[string]any{"monto": 10, "timestamp": 1700000000},
				},
			},
		},
	}))
	return store
}

func TestGenerar_ArmaMovimientosOrdenados(t *testing.T) {
	pdf := &fakePDF{}
	uc := reportes.NewEstadoCuentaUseCase(treedb.NewLocalRepository(sembrar(t)), pdf)
	ahora := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	uc.SetClock(func() time.Time { return ahora })

	b, err := uc.Generar(context.Background(), "l1", "luis")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(b))

	e := pdf.recibido
	require.NotNil(t, e)
	assert.Equal(t, "Tienda Ana", e.NombreLocal)
	assert.Equal(t, "luis@example.com", e.ClienteNombre)
	assert.Equal(t, ahora, e.GeneradoEn)
	require.Len(t, e.Movimientos, 2)
	assert.Equal(t, int64(1700000000), e.Movimientos[0].Fecha.Unix())
	assert.Nil(t, e.Movimientos[0].Vencimiento)
	require.NotNil(t, e.Movimientos[1].Vencimiento)
	assert.Equal(t, time.Unix(1700000100, 0).AddDate(0, 0, 15), *e.Movimientos[1].Vencimiento)
	assert.Equal(t, "35.5", e.TotalCargado.String())
	assert.Equal(t, "35.5", e.SaldoActual.String())
}

func TestGenerar_NoEncontrados(t *testing.T) {
	uc := reportes.NewEstadoCuentaUseCase(treedb.NewLocalRepository(sembrar(t)), &fakePDF{})

	_, err := uc.Generar(context.Background(), "nope", "luis")
	assert.ErrorIs(t, err, domain.ErrLocalNoEncontrado)

	_, err = uc.Generar(context.Background(), "l1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerar_ErrorDelGenerador(t *testing.T) {
	uc := reportes.NewEstadoCuentaUseCase(treedb.NewLocalRepository(sembrar(t)), &fakePDF{err: errors.New("maroto")})
	_, err := uc.Generar(context.Background(), "l1", "luis")
	assert.Error(t, err)
}
