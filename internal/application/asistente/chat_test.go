package asistente_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiapp/internal/application/asistente"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
)

type fakeChat struct {
	reply       string
	err         error
	prompt      string
	conDeadline bool
}

func (f *fakeChat) Completar(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	_, f.conDeadline = ctx.Deadline()
	return f.reply, f.err
}

type fakeLocales struct {
	locales []*entity.Local
	err     error
}

func (f fakeLocales) ListarPorPropietario(_ context.Context, _ string) ([]*entity.Local, error) {
	return f.locales, f.err
}

func tienda() []*entity.Local {
	return []*entity.Local{{
		ID: "l1", Nombre: "Tienda Ana",
		Clientes: map[string]*entity.ClienteLocal{"c1": {ID: "c1", Nombre: "Luis", Deuda: 12}},
	}}
}

func TestResponder_SinProveedorUsaMotorLocal(t *testing.T) {
	a := asistente.NewAsistente(nil, fakeLocales{}, 0, nil)
	reply, err := a.Responder(context.Background(), "ana", "3 unidades a 12.50")
	require.NoError(t, err)
	assert.Equal(t, "3 × 12.5 = 37.50 (total)", reply)
}

func TestResponder_MensajeVacio(t *testing.T) {
	a := asistente.NewAsistente(&fakeChat{}, fakeLocales{}, 0, nil)
	_, err := a.Responder(context.Background(), "ana", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResponder_PromptConDatosDelNegocio(t *testing.T) {
	chat := &fakeChat{reply: "  Luis te debe $12.  "}
	a := asistente.NewAsistente(chat, fakeLocales{locales: tienda()}, time.Second, nil)

	reply, err := a.Responder(context.Background(), "ana", "¿quién me debe?")
	require.NoError(t, err)
	assert.Equal(t, "Luis te debe $12.", reply)
	assert.True(t, chat.conDeadline)
	assert.Contains(t, chat.prompt, "Eres un asistente de negocios para tenderos.")
	assert.Contains(t, chat.prompt, "Tienda: Tienda Ana")
	assert.Contains(t, chat.prompt, "TOTAL DEUDA: $12.00")
	assert.Contains(t, chat.prompt, "Pregunta del usuario: ¿quién me debe?")
}

func TestResponder_ErrorDelProveedorCaeAlMotorLocal(t *testing.T) {
	chat := &fakeChat{err: errors.New("502")}
	a := asistente.NewAsistente(chat, fakeLocales{locales: tienda()}, time.Second, nil)

	reply, err := a.Responder(context.Background(), "ana", "10% de 250")
	require.NoError(t, err)
	assert.Equal(t, "10.0% de 250.0 = 25.00", reply)
}

func TestResponder_RespuestaVacia(t *testing.T) {
	a := asistente.NewAsistente(&fakeChat{reply: " "}, fakeLocales{}, time.Second, nil)
	reply, err := a.Responder(context.Background(), "ana", "hola")
	require.NoError(t, err)
	assert.Equal(t, asistente.MensajeSinContenido, reply)
}

func TestResponder_SinNegocioIgualPregunta(t *testing.T) {
	chat := &fakeChat{reply: "ok"}
	a := asistente.NewAsistente(chat, fakeLocales{err: errors.New("caído")}, time.Second, nil)

	_, err := a.Responder(context.Background(), "ana", "¿qué productos tengo?")
	require.NoError(t, err)
	assert.Contains(t, chat.prompt, "No hay datos disponibles.")
	assert.NotContains(t, chat.prompt, "DATOS CONSULTADOS")
}
