package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier simula la tabla nodos en memoria para probar setTx sin base de datos.
type fakeQuerier struct {
	filas map[string][]byte
	execs []string
}

type fakeRow struct {
	raw []byte
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.raw
	return nil
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, strings.TrimSpace(sql))
	switch {
	case strings.HasPrefix(strings.TrimSpace(sql), "INSERT"):
		f.filas[args[0].(string)+"/"+args[1].(string)] = args[2].([]byte)
	case strings.Contains(sql, "AND clave"):
		delete(f.filas, args[0].(string)+"/"+args[1].(string))
	}
	return pgconn.NewCommandTag("OK"), nil
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no soportado")
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	raw, ok := f.filas[args[0].(string)+"/"+args[1].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{raw: raw}
}

func TestSetTx_RutaAnidadaCreaDocumento(t *testing.T) {
	q := &fakeQuerier{filas: map[string][]byte{}}
	ctx := context.Background()

	err := setTx(ctx, q, []string{"locales", "l1", "productos", "p1"}, map[string]any{"nombre": "Pan"})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(q.filas["locales/l1"], &doc))
	assert.Equal(t, map[string]any{"productos": map[string]any{"p1": map[string]any{"nombre": "Pan"}}}, doc)
}

func TestSetTx_NilEliminaFilaVacia(t *testing.T) {
	q := &fakeQuerier{filas: map[string][]byte{"locales/l1": []byte(`{"productos":{"p1":{"nombre":"Pan"}}}`)}}

	require.NoError(t, setTx(context.Background(), q, []string{"locales", "l1", "productos", "p1"}, nil))

	_, ok := q.filas["locales/l1"]
	assert.False(t, ok, "el documento vacío se elimina")
}

func TestSetTx_ColeccionReemplazaHijos(t *testing.T) {
	q := &fakeQuerier{filas: map[string][]byte{}}

	err := setTx(context.Background(), q, []string{"proveedores"}, map[string]any{
		"prov_1": map[string]any{"id": "prov_1", "nombre": "Lácteos"},
	})
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM nodos WHERE coleccion = $1", q.execs[0])
	assert.Contains(t, q.filas, "proveedores/prov_1")
}
