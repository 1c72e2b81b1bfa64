package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/pkg/logger"
)

// DeudaAPIHandler expone las operaciones de deuda como JSON.
type DeudaAPIHandler struct {
	clientes *usecase.ClienteUseCase
	log      *logger.Logger
}

func NewDeudaAPIHandler(clientes *usecase.ClienteUseCase, log *logger.Logger) *DeudaAPIHandler {
	return &DeudaAPIHandler{clientes: clientes, log: log}
}

// SetDeuda sobrescribe el saldo: PUT /api/locales/:id/clientes/:cid/deuda {"deuda"}.
func (h *DeudaAPIHandler) SetDeuda(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	var in dto.SetDeudaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, mensajesDeudaAPI.generico())
	}
	if _, err := h.clientes.Obtener(c.Context(), id, cid); err != nil {
		return h.fallo(c, err)
	}
	deuda, err := h.clientes.ActualizarDeuda(c.Context(), id, cid, in.Deuda)
	if err != nil {
		return h.fallo(c, err)
	}
	return c.JSON(dto.DeudaResponse{Success: true, Deuda: deuda})
}

func (h *DeudaAPIHandler) Cancelar(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	if _, err := h.clientes.Obtener(c.Context(), id, cid); err != nil {
		return h.fallo(c, err)
	}
	if err := h.clientes.CancelarDeuda(c.Context(), id, cid); err != nil {
		return h.fallo(c, err)
	}
	return c.JSON(dto.DeudaResponse{Success: true, Deuda: 0})
}

// Registrar suma una deuda al historial: POST .../deudas {"monto","plazo_dias"}.
func (h *DeudaAPIHandler) Registrar(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	var in dto.RegistrarDeudaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, mensajesDeudaAPI.generico())
	}
	if msg := validar(&in, mensajesDeudaAPI); msg != "" {
		return errorJSON(c, fiber.StatusBadRequest, msg)
	}
	deuda, err := h.clientes.RegistrarDeuda(c.Context(), id, cid, in.Monto, in.PlazoDias)
	if err != nil {
		return h.fallo(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DeudaResponse{Success: true, Deuda: deuda})
}

func (h *DeudaAPIHandler) Historial(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	if _, err := h.clientes.Obtener(c.Context(), id, cid); err != nil {
		return h.fallo(c, err)
	}
	deudas, err := h.clientes.HistorialDeudas(c.Context(), id, cid)
	if err != nil {
		return h.fallo(c, err)
	}
	return c.JSON(dto.HistorialResponse{Success: true, Deudas: deudas})
}

func (h *DeudaAPIHandler) fallo(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDeudaNoNumerica),
		errors.Is(err, domain.ErrDeudaNegativa),
		errors.Is(err, domain.ErrMontoInvalido),
		errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	h.log.Error().Err(err).Str("local", c.Params("id")).Str("cliente", c.Params("cid")).Msg("api deuda")
	return errorJSON(c, fiber.StatusInternalServerError, "Error interno")
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}
