package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/asistente"
	"github.com/jhoicas/fiapp/internal/application/auth"
	"github.com/jhoicas/fiapp/internal/application/reportes"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	LocalUC        *usecase.LocalUseCase
	ProductoUC     *usecase.ProductoUseCase
	ClienteUC      *usecase.ClienteUseCase
	ProveedorUC    *usecase.ProveedorUseCase
	ImagenUC       *usecase.ImagenUseCase
	EstadoCuentaUC *reportes.EstadoCuentaUseCase
	Asistente      *asistente.Asistente
	Sesiones       *Sesiones
	Log            *logger.Logger
}

// Router registra las rutas HTML y JSON. La sesión debe estar cargada antes (Sesiones.Cargar).
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	// Públicas
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sesiones, log)
	app.Get("/", authHandler.Index)
	app.Get("/register", authHandler.RegisterForm)
	app.Post("/register", authHandler.Register)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Get("/select-type", authHandler.SelectTypeForm)
	app.Post("/select-type", authHandler.SelectType)
	app.Get("/dashboard", authHandler.Dashboard)

	// Tendero (HTML)
	tendero := app.Group("/tendero", RequireTipo(entity.RolTendero))

	localHandler := NewLocalHandler(deps.LocalUC, deps.ProductoUC, deps.ProveedorUC, log)
	tendero.Get("/locales", localHandler.Listar)
	tendero.Get("/locales/create", localHandler.CrearForm)
	tendero.Post("/locales/create", localHandler.Crear)
	tendero.Get("/locales/:id/editar", localHandler.EditarForm)
	tendero.Post("/locales/:id/editar", localHandler.Editar)
	tendero.Post("/locales/:id/eliminar", localHandler.Eliminar)
	tendero.Get("/locales/:id/inventario", localHandler.Inventario)

	productoHandler := NewProductoHandler(deps.LocalUC, deps.ProductoUC, deps.ProveedorUC, deps.ImagenUC, log)
	tendero.Get("/locales/:id/productos/create", productoHandler.CrearForm)
	tendero.Post("/locales/:id/productos/create", productoHandler.Crear)
	tendero.Get("/locales/:id/productos/:pid/editar", productoHandler.EditarForm)
	tendero.Post("/locales/:id/productos/:pid/editar", productoHandler.Editar)
	tendero.Post("/locales/:id/productos/:pid/eliminar", productoHandler.Eliminar)

	clienteHandler := NewClienteHandler(deps.LocalUC, deps.ClienteUC, deps.EstadoCuentaUC, log)
	tendero.Get("/locales/:id/clientes", clienteHandler.Listar)
	tendero.Get("/locales/:id/clientes/agregar", clienteHandler.AgregarForm)
	tendero.Post("/locales/:id/clientes/agregar", clienteHandler.Agregar)
	tendero.Post("/locales/:id/cliente/:cid/abono", clienteHandler.Abono)
	tendero.Post("/locales/:id/cliente/:cid/cancelar", clienteHandler.Cancelar)
	tendero.Post("/locales/:id/cliente/:cid/sumar", clienteHandler.Sumar)
	tendero.Post("/locales/:id/cliente/:cid/eliminar", clienteHandler.Eliminar)
	tendero.Get("/locales/:id/cliente/:cid/historial", clienteHandler.Historial)
	tendero.Get("/locales/:id/cliente/:cid/estado.pdf", clienteHandler.EstadoPDF)

	proveedorHandler := NewProveedorHandler(deps.ProveedorUC, log)
	tendero.Get("/proveedores", proveedorHandler.Listar)
	tendero.Get("/proveedores/create", proveedorHandler.CrearForm)
	tendero.Post("/proveedores/create", proveedorHandler.Crear)
	tendero.Get("/proveedores/:pid/editar", proveedorHandler.EditarForm)
	tendero.Post("/proveedores/:pid/editar", proveedorHandler.Editar)
	tendero.Post("/proveedores/:pid/delete", proveedorHandler.Eliminar)

	// Cliente (HTML)
	cliente := app.Group("/cliente", RequireTipo(entity.RolCliente))
	portalHandler := NewPortalHandler(deps.ClienteUC, log)
	cliente.Get("/deudas", portalHandler.Deudas)
	cliente.Get("/deudas/:local_id", portalHandler.Detalle)

	// API JSON (tendero)
	api := app.Group("/api", RequireTipoAPI(entity.RolTendero))
	api.Get("/proveedores", proveedorHandler.API)

	aiHandler := NewAIHandler(deps.Asistente, log)
	api.Post("/ai_chat", aiHandler.Chat)

	deudaHandler := NewDeudaAPIHandler(deps.ClienteUC, log)
	api.Put("/locales/:id/clientes/:cid/deuda", deudaHandler.SetDeuda)
	api.Post("/locales/:id/clientes/:cid/deuda/cancelar", deudaHandler.Cancelar)
	api.Post("/locales/:id/clientes/:cid/deudas", deudaHandler.Registrar)
	api.Get("/locales/:id/clientes/:cid/deudas", deudaHandler.Historial)
}
