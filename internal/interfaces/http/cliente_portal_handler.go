package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/pkg/logger"
)

// PortalHandler muestra al cliente sus deudas en cada tienda.
type PortalHandler struct {
	clientes *usecase.ClienteUseCase
	log      *logger.Logger
}

func NewPortalHandler(clientes *usecase.ClienteUseCase, log *logger.Logger) *PortalHandler {
	return &PortalHandler{clientes: clientes, log: log}
}

func (h *PortalHandler) Deudas(c *fiber.Ctx) error {
	deudas, err := h.clientes.DeudasDeCliente(c.Context(), GetUserID(c))
	if err != nil {
		h.log.Error().Err(err).Str("cliente", GetUserID(c)).Msg("deudas del cliente")
		return render(c, "cliente_deudas", fiber.Map{"Error": err.Error()})
	}
	return render(c, "cliente_deudas", fiber.Map{"Deudas": deudas})
}

// Detalle muestra el historial del cliente en un local. Si no está registrado ahí vuelve al listado.
func (h *PortalHandler) Detalle(c *fiber.Ctx) error {
	localID := c.Params("local_id")
	l, cl, err := h.clientes.DetalleParaCliente(c.Context(), localID, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Redirect("/cliente/deudas")
		}
		return err
	}
	return render(c, "cliente_deuda_detalle", fiber.Map{
		"LocalID":   l.ID,
		"LocalName": l.Nombre,
		"Cliente":   cl,
		"Deudas":    entity.OrdenarDeudas(cl.Deudas),
	})
}
