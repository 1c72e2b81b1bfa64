package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
	"github.com/jhoicas/fiapp/internal/infrastructure/treedb"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store       *tree.MemoryStore
	usuarios    *treedb.UsuarioRepo
	locales     *usecase.LocalUseCase
	productos   *usecase.ProductoUseCase
	clientes    *usecase.ClienteUseCase
	proveedores *usecase.ProveedorUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := tree.NewMemoryStore()
	usuarios := treedb.NewUsuarioRepository(store)
	localRepo := treedb.NewLocalRepository(store)
	return &fixture{
		store:       store,
		usuarios:    usuarios,
		locales:     usecase.NewLocalUseCase(localRepo),
		productos:   usecase.NewProductoUseCase(treedb.NewProductoRepository(store)),
		clientes:    usecase.NewClienteUseCase(treedb.NewClienteRepository(store), localRepo, usuarios),
		proveedores: usecase.NewProveedorUseCase(treedb.NewProveedorRepository(store)),
	}
}

// usuario guarda un usuario con el rol dado.
func (f *fixture) usuario(t *testing.T, email, userID string, rol entity.Rol) {
	t.Helper()
	require.NoError(t, f.usuarios.Save(context.Background(), &entity.Usuario{
		Email: email, PasswordHash: "x", UserID: userID, TipoUsuario: rol,
	}))
}
