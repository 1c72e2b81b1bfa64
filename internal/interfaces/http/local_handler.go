package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/pkg/logger"
)

// LocalHandler maneja las tiendas del tendero y su inventario.
type LocalHandler struct {
	locales     *usecase.LocalUseCase
	productos   *usecase.ProductoUseCase
	proveedores *usecase.ProveedorUseCase
	log         *logger.Logger
}

func NewLocalHandler(locales *usecase.LocalUseCase, productos *usecase.ProductoUseCase, proveedores *usecase.ProveedorUseCase, log *logger.Logger) *LocalHandler {
	return &LocalHandler{locales: locales, productos: productos, proveedores: proveedores, log: log}
}

func (h *LocalHandler) Listar(c *fiber.Ctx) error {
	locales, err := h.locales.ListarPorPropietario(c.Context(), GetUserID(c))
	if err != nil {
		h.log.Error().Err(err).Str("tendero", GetUserID(c)).Msg("listar locales")
		return render(c, "tendero_locales", fiber.Map{"Error": err.Error()})
	}
	return render(c, "tendero_locales", fiber.Map{"Locales": locales})
}

func (h *LocalHandler) CrearForm(c *fiber.Ctx) error {
	return render(c, "tendero_create_local", nil)
}

func (h *LocalHandler) Crear(c *fiber.Ctx) error {
	var in dto.LocalRequest
	if msg := parsearFormulario(c, &in, mensajesLocal); msg != "" {
		return render(c, "tendero_create_local", fiber.Map{"Error": msg})
	}
	if _, err := h.locales.Crear(c.Context(), in.Nombre, GetUserID(c)); err != nil {
		h.log.Error().Err(err).Msg("crear local")
		return render(c, "tendero_create_local", fiber.Map{"Error": err.Error(), "Nombre": in.Nombre})
	}
	return c.Redirect("/tendero/locales")
}

func (h *LocalHandler) EditarForm(c *fiber.Ctx) error {
	l, err := h.locales.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return c.Redirect("/tendero/locales")
	}
	return render(c, "tendero_editar_local", fiber.Map{"Local": l, "LocalID": l.ID})
}

func (h *LocalHandler) Editar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.LocalRequest
	if msg := parsearFormulario(c, &in, mensajesLocal); msg != "" {
		return render(c, "tendero_editar_local", fiber.Map{"Error": msg, "LocalID": id})
	}
	if err := h.locales.Actualizar(c.Context(), id, in.Nombre); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Redirect("/tendero/locales")
		}
		h.log.Error().Err(err).Str("local", id).Msg("editar local")
		return render(c, "tendero_editar_local", fiber.Map{"Error": err.Error(), "LocalID": id})
	}
	return c.Redirect("/tendero/locales")
}

func (h *LocalHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.locales.Eliminar(c.Context(), id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		h.log.Error().Err(err).Str("local", id).Msg("eliminar local")
	}
	return c.Redirect("/tendero/locales")
}

// Inventario lista los productos del local con el mapa de proveedores del tendero.
func (h *LocalHandler) Inventario(c *fiber.Ctx) error {
	id := c.Params("id")
	data := fiber.Map{
		"LocalID":     id,
		"LocalName":   h.locales.NombreOId(c.Context(), id),
		"Proveedores": proveedoresDe(c, h.proveedores, h.log),
	}
	productos, err := h.productos.Listar(c.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("local", id).Msg("listar productos")
		data["Error"] = err.Error()
	}
	data["Productos"] = productos
	return render(c, "tendero_inventario", data)
}

// proveedoresDe devuelve los proveedores del tendero por id; vacío si la lectura falla.
func proveedoresDe(c *fiber.Ctx, uc *usecase.ProveedorUseCase, log *logger.Logger) map[string]*entity.Proveedor {
	list, err := uc.Listar(c.Context(), GetUserID(c))
	if err != nil {
		log.Warn().Err(err).Msg("listar proveedores")
	}
	return usecase.IndexarProveedores(list)
}
