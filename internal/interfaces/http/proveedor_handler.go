package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/pkg/logger"
)

const proveedoresURL = "/tendero/proveedores"

// ProveedorHandler maneja los proveedores del tendero (HTML y JSON).
type ProveedorHandler struct {
	uc  *usecase.ProveedorUseCase
	log *logger.Logger
}

func NewProveedorHandler(uc *usecase.ProveedorUseCase, log *logger.Logger) *ProveedorHandler {
	return &ProveedorHandler{uc: uc, log: log}
}

func (h *ProveedorHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context(), GetUserID(c))
	if err != nil {
		h.log.Error().Err(err).Str("tendero", GetUserID(c)).Msg("listar proveedores")
		return render(c, "tendero_proveedores", fiber.Map{"Error": err.Error()})
	}
	return render(c, "tendero_proveedores", fiber.Map{"Proveedores": list})
}

func (h *ProveedorHandler) CrearForm(c *fiber.Ctx) error {
	return render(c, "tendero_create_proveedor", nil)
}

func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.ProveedorRequest
	if msg := parsearFormulario(c, &in, mensajesProveedor); msg != "" {
		return render(c, "tendero_create_proveedor", fiber.Map{"Error": msg, "Form": in})
	}
	if _, err := h.uc.Crear(c.Context(), in.Nombre, in.Contacto, in.Email, GetUserID(c)); err != nil {
		h.log.Error().Err(err).Msg("crear proveedor")
		return render(c, "tendero_create_proveedor", fiber.Map{"Error": err.Error(), "Form": in})
	}
	return c.Redirect(proveedoresURL)
}

func (h *ProveedorHandler) EditarForm(c *fiber.Ctx) error {
	p, err := h.uc.Obtener(c.Context(), c.Params("pid"))
	if err != nil {
		return c.Redirect(proveedoresURL)
	}
	return render(c, "tendero_editar_proveedor", fiber.Map{"Proveedor": p, "ProveedorID": p.ID})
}

func (h *ProveedorHandler) Editar(c *fiber.Ctx) error {
	pid := c.Params("pid")
	var in dto.ProveedorRequest
	if msg := parsearFormulario(c, &in, mensajesProveedor); msg != "" {
		return render(c, "tendero_editar_proveedor", fiber.Map{"Error": msg, "ProveedorID": pid, "Form": in})
	}
	if err := h.uc.Actualizar(c.Context(), pid, in.Nombre, in.Contacto, in.Email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Redirect(proveedoresURL)
		}
		h.log.Error().Err(err).Str("proveedor", pid).Msg("editar proveedor")
		return render(c, "tendero_editar_proveedor", fiber.Map{"Error": err.Error(), "ProveedorID": pid, "Form": in})
	}
	return c.Redirect(proveedoresURL)
}

func (h *ProveedorHandler) Eliminar(c *fiber.Ctx) error {
	pid := c.Params("pid")
	if err := h.uc.Eliminar(c.Context(), pid); err != nil {
		h.log.Error().Err(err).Str("proveedor", pid).Msg("eliminar proveedor")
	}
	return c.Redirect(proveedoresURL)
}

// API devuelve los proveedores del tendero indexados por id.
func (h *ProveedorHandler) API(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context(), GetUserID(c))
	if err != nil {
		h.log.Error().Err(err).Msg("api proveedores")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.ProveedoresResponse{Proveedores: usecase.IndexarProveedores(list)})
}
