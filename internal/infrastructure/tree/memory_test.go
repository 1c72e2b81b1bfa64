package tree_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
)

func TestSplitYJoin(t *testing.T) {
	assert.Equal(t, []string{"locales", "l1", "productos"}, tree.Split("/locales//l1/productos/"))
	assert.Empty(t, tree.Split(""))
	assert.Equal(t, "locales/l1/clientes", tree.Join("locales", "/l1/", "clientes"))
}

func TestMemoryStore_SetYGetNormalizaNumeros(t *testing.T) {
	ctx := context.Background()
	s := tree.NewMemoryStore()

	require.NoError(t, s.Set(ctx, "locales/l1", map[string]any{"nombre": "Tienda", "stock": 3}))

	v, err := s.Get(ctx, "locales/l1/stock")
	require.NoError(t, err)
	assert.Equal(t, float64(3), v)

	v, err = s.Get(ctx, "locales/l2")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStore_SetNilEliminaYPodaPadres(t *testing.T) {
	ctx := context.Background()
	s := tree.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "locales/l1/productos/p1", map[string]any{"nombre": "Pan"}))

	require.NoError(t, s.Delete(ctx, "locales/l1/productos/p1"))

	v, err := s.Get(ctx, "locales")
	require.NoError(t, err)
	assert.Nil(t, v, "los mapas vacíos no se guardan")
}

func TestMemoryStore_UpdateFusionaHijos(t *testing.T) {
	ctx := context.Background()
	s := tree.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "p", map[string]any{"nombre": "Pan", "precio": 1.5, "proveedor": "prov_1"}))

	require.NoError(t, s.Update(ctx, "p", map[string]any{"precio": 2.0, "proveedor": nil}))

	v, err := s.Get(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"nombre": "Pan", "precio": 2.0}, v)
}

func TestMemoryStore_GetDevuelveCopia(t *testing.T) {
	ctx := context.Background()
	s := tree.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "a", map[string]any{"b": "c"}))

	v, _ := s.Get(ctx, "a")
	v.(map[string]any)["b"] = "mutado"

	again, _ := s.Get(ctx, "a/b")
	assert.Equal(t, "c", again)
}

func TestOpenFile_PersisteEntreAperturas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "fiapp.json")

	s, err := tree.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "usuarios/abc", map[string]any{"email": "ana@example.com"}))

	reopened, err := tree.OpenFile(path)
	require.NoError(t, err)
	v, err := reopened.Get(ctx, "usuarios/abc/email")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", v)
}

func TestOpenFile_FalloAlPersistirNoCambiaMemoria(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "sub")
	s, err := tree.OpenFile(filepath.Join(dir, "fiapp.json"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "locales/l1/nombre", "Tienda Ana"))

	// El directorio pasa a ser un archivo: la siguiente escritura no puede persistirse.
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))

	assert.Error(t, s.Set(ctx, "locales/l1/nombre", "Otra"))
	assert.Error(t, s.Update(ctx, "locales/l1", map[string]any{"propietario_id": "ana"}))
	assert.Error(t, s.Delete(ctx, "locales/l1"))

	v, err := s.Get(ctx, "locales/l1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"nombre": "Tienda Ana"}, v)
}
