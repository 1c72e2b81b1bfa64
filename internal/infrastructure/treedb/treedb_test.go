package treedb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
	"github.com/jhoicas/fiapp/internal/infrastructure/treedb"
)

func TestEmailKey_IgnoraMayusculas(t *testing.T) {
	assert.Equal(t, treedb.EmailKey("ana@example.com"), treedb.EmailKey("  ANA@Example.com "))
	assert.Len(t, treedb.EmailKey("ana@example.com"), 32)
}

func TestUsuarioRepo_GuardaEnClaveHash(t *testing.T) {
	ctx := context.Background()
	store := tree.NewMemoryStore()
	repo := treedb.NewUsuarioRepository(store)

	require.NoError(t, repo.Save(ctx, &entity.Usuario{Email: "ana@example.com", PasswordHash: "h", UserID: "ana"}))

	raw, err := store.Get(ctx, "usuarios/"+treedb.EmailKey("ana@example.com"))
	require.NoError(t, err)
	doc := raw.(map[string]any)
	assert.Equal(t, "ana", doc["user_id"])
	_, tieneTipo := doc["tipo_usuario"]
	assert.False(t, tieneTipo, "tipo_usuario null no se almacena")

	existe, err := repo.ExisteUserID(ctx, "ana")
	require.NoError(t, err)
	assert.True(t, existe)

	u, err := repo.GetByEmail(ctx, "otro@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestProductoRepo_UpdateConNilEliminaCampo(t *testing.T) {
	ctx := context.Background()
	repo := treedb.NewProductoRepository(tree.NewMemoryStore())
	require.NoError(t, repo.Save(ctx, "l1", &entity.Producto{ID: "p1", Nombre: "Pan", Precio: 1.5, Stock: 4, Proveedor: "prov_1"}))

	require.NoError(t, repo.Update(ctx, "l1", "p1", map[string]any{"proveedor": nil, "stock": 7}))

	p, err := repo.GetByID(ctx, "l1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "", p.Proveedor)
	assert.Equal(t, 7, p.Stock)
}

func TestClienteRepo_HistorialDeudas(t *testing.T) {
	ctx := context.Background()
	repo := treedb.NewClienteRepository(tree.NewMemoryStore())
	require.NoError(t, repo.Save(ctx, "l1", &entity.ClienteLocal{ID: "juan", Email: "juan@example.com", Nombre: "juan@example.com", Deuda: 10}))

	plazo := 15
	require.NoError(t, repo.AddDeudaItem(ctx, "l1", "juan", entity.DeudaItem{Clave: "1700000000", Monto: 5, Timestamp: 1700000000, PlazoDias: &plazo}))
	require.NoError(t, repo.SetDeuda(ctx, "l1", "juan", 15))

	c, err := repo.GetByID(ctx, "l1", "juan")
	require.NoError(t, err)
	assert.Equal(t, 15.0, c.Deuda)
	require.Contains(t, c.Deudas, "1700000000")
	assert.Equal(t, 15, *c.Deudas["1700000000"].PlazoDias)
}

func TestProveedorRepo_ListOrdenado(t *testing.T) {
	ctx := context.Background()
	repo := treedb.NewProveedorRepository(tree.NewMemoryStore())
	require.NoError(t, repo.Save(ctx, &entity.Proveedor{ID: "prov_2", Nombre: "B"}))
	require.NoError(t, repo.Save(ctx, &entity.Proveedor{ID: "prov_1", Nombre: "A", PropietarioID: "ana"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "prov_1", list[0].ID)
	assert.Equal(t, "ana", list[0].PropietarioID)
}
