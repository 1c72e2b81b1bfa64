// Comando admin: tareas de mantenimiento sobre usuarios, locales y proveedores.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/fiapp/internal/application/auth"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/bootstrap"
	"github.com/jhoicas/fiapp/pkg/config"
	"github.com/jhoicas/fiapp/pkg/logger"
)

func main() {
	root := newRootCmd(abrirDesdeEntorno)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// abrirDesdeEntorno conecta el mismo almacenamiento que usa el servidor.
func abrirDesdeEntorno(ctx context.Context, verbose bool) (*servicios, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, func() {}, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.Nop()
	if verbose {
		log = logger.New(logger.Config{Env: "development", Level: "debug", Output: os.Stderr})
	}
	repos, cerrar, err := bootstrap.Abrir(ctx, cfg, log)
	if err != nil {
		return nil, cerrar, err
	}
	return &servicios{
		auth:        auth.NewAuthUseCase(repos.Usuarios, cfg.Auth.HashScheme),
		locales:     usecase.NewLocalUseCase(repos.Locales),
		proveedores: usecase.NewProveedorUseCase(repos.Proveedores),
	}, cerrar, nil
}
