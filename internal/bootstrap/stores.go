// Package bootstrap arma los árboles de documentos y repositorios según la configuración.
// Lo comparten el servidor y la CLI de administración.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/fiapp/internal/domain/repository"
	"github.com/jhoicas/fiapp/internal/infrastructure/firebase"
	"github.com/jhoicas/fiapp/internal/infrastructure/postgres"
	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
	"github.com/jhoicas/fiapp/internal/infrastructure/treedb"
	"github.com/jhoicas/fiapp/pkg/config"
	"github.com/jhoicas/fiapp/pkg/logger"
)

// Repos repositorios sobre el árbol configurado.
type Repos struct {
	Usuarios    *treedb.UsuarioRepo
	Locales     *treedb.LocalRepo
	Productos   *treedb.ProductoRepo
	Clientes    *treedb.ClienteRepo
	Proveedores *treedb.ProveedorRepo
}

// Abrir conecta el backend de STORE_BACKEND. Con USE_LOCAL_AUTH los usuarios viven en el archivo local.
// El cierre devuelto libera el pool de Postgres si se abrió.
func Abrir(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repos, func(), error) {
	cerrar := func() {}

	var principal repository.TreeStore
	switch cfg.Store.Backend {
	case config.StoreLocal:
		m, err := tree.OpenFile(cfg.Store.LocalPath)
		if err != nil {
			return nil, cerrar, fmt.Errorf("abrir árbol local: %w", err)
		}
		principal = m
	case config.StoreFirebase:
		fb, err := firebase.NewTreeStore(ctx, cfg.Store)
		if err != nil {
			return nil, cerrar, fmt.Errorf("conectar firebase: %w", err)
		}
		principal = fb
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, cerrar, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		cerrar = pool.Close
		pg := postgres.NewTreeStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, func() {}, err
		}
		principal = pg
	default:
		return nil, cerrar, fmt.Errorf("STORE_BACKEND desconocido %q", cfg.Store.Backend)
	}
	log.Info().Str("backend", cfg.Store.Backend).Msg("árbol de documentos listo")

	usuarios := principal
	if cfg.Store.UseLocalAuth && cfg.Store.Backend != config.StoreLocal {
		m, err := tree.OpenFile(cfg.Store.LocalPath)
		if err != nil {
			cerrar()
			return nil, func() {}, fmt.Errorf("abrir usuarios locales: %w", err)
		}
		usuarios = m
		log.Info().Str("path", cfg.Store.LocalPath).Msg("usuarios en almacenamiento local")
	}

	return &Repos{
		Usuarios:    treedb.NewUsuarioRepository(usuarios),
		Locales:     treedb.NewLocalRepository(principal),
		Productos:   treedb.NewProductoRepository(principal),
		Clientes:    treedb.NewClienteRepository(principal),
		Proveedores: treedb.NewProveedorRepository(principal),
	}, cerrar, nil
}
