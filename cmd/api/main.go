package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fiapp/internal/application/asistente"
	"github.com/jhoicas/fiapp/internal/application/auth"
	"github.com/jhoicas/fiapp/internal/application/reportes"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/bootstrap"
	infrapdf "github.com/jhoicas/fiapp/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/fiapp/internal/interfaces/http"
	"github.com/jhoicas/fiapp/pkg/config"
	"github.com/jhoicas/fiapp/pkg/logger"
	"github.com/jhoicas/fiapp/web"
)

const swaggerPath = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, cerrar, err := bootstrap.Abrir(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer cerrar()

	imagenes, imgOrigen, err := bootstrap.Imagenes(ctx, cfg.Uploads)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}
	chat, err := bootstrap.Chat(ctx, cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("proveedor de IA")
	}

	authUC := auth.NewAuthUseCase(repos.Usuarios, cfg.Auth.HashScheme)
	localUC := usecase.NewLocalUseCase(repos.Locales)
	productoUC := usecase.NewProductoUseCase(repos.Productos)
	clienteUC := usecase.NewClienteUseCase(repos.Clientes, repos.Locales, repos.Usuarios)
	proveedorUC := usecase.NewProveedorUseCase(repos.Proveedores)
	imagenUC := usecase.NewImagenUseCase(imagenes, cfg.Uploads.MaxBytes)
	estadoCuentaUC := reportes.NewEstadoCuentaUseCase(repos.Locales, infrapdf.NewEstadoCuentaPDF())
	asist := asistente.NewAsistente(chat, localUC, cfg.AI.Timeout, log.Component("asistente"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        web.Views(),
		BodyLimit:    8 * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.SecurityHeaders(imgOrigen))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Imágenes subidas a disco; el resto de /static va embebido en el binario.
	app.Static("/static/productos", filepath.Join(cfg.Uploads.Dir, "productos"))
	app.Use("/static", filesystem.New(filesystem.Config{Root: web.Static()}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerPath,
			Path:     "docs",
			Title:    "FIAPP API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	sesiones := httpRouter.NewSesiones(cfg.Session)
	app.Use(sesiones.Cargar())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		LocalUC:        localUC,
		ProductoUC:     productoUC,
		ClienteUC:      clienteUC,
		ProveedorUC:    proveedorUC,
		ImagenUC:       imagenUC,
		EstadoCuentaUC: estadoCuentaUC,
		Asistente:      asist,
		Sesiones:       sesiones,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
