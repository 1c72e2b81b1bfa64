package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/application/reportes"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/pkg/logger"
)

// ClienteHandler maneja los clientes de un local y sus deudas desde el panel del tendero.
type ClienteHandler struct {
	locales  *usecase.LocalUseCase
	clientes *usecase.ClienteUseCase
	estados  *reportes.EstadoCuentaUseCase
	log      *logger.Logger
}

func NewClienteHandler(locales *usecase.LocalUseCase, clientes *usecase.ClienteUseCase, estados *reportes.EstadoCuentaUseCase, log *logger.Logger) *ClienteHandler {
	return &ClienteHandler{locales: locales, clientes: clientes, estados: estados, log: log}
}

func clientesURL(localID string) string {
	return "/tendero/locales/" + localID + "/clientes"
}

func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	id := c.Params("id")
	data := fiber.Map{"LocalID": id, "LocalName": h.locales.NombreOId(c.Context(), id)}
	clientes, err := h.clientes.Listar(c.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("local", id).Msg("listar clientes")
		data["Error"] = err.Error()
	}
	data["Clientes"] = clientes
	return render(c, "tendero_clientes", data)
}

func (h *ClienteHandler) AgregarForm(c *fiber.Ctx) error {
	id := c.Params("id")
	return render(c, "tendero_agregar_cliente", fiber.Map{"LocalID": id, "LocalName": h.locales.NombreOId(c.Context(), id)})
}

// Agregar registra en el local a un usuario cliente ya existente.
func (h *ClienteHandler) Agregar(c *fiber.Ctx) error {
	id := c.Params("id")
	data := fiber.Map{"LocalID": id, "LocalName": h.locales.NombreOId(c.Context(), id)}

	var in dto.AgregarClienteRequest
	if msg := parsearFormulario(c, &in, mensajesCliente); msg != "" {
		data["Error"] = msg
		return render(c, "tendero_agregar_cliente", data)
	}
	data["Email"] = in.Email
	data["DeudaInicial"] = in.DeudaInicial

	if _, err := h.clientes.Agregar(c.Context(), id, in.Email, in.DeudaInicial); err != nil {
		switch {
		case errors.Is(err, domain.ErrClienteNoExiste):
			data["Error"] = fmt.Sprintf("El cliente con email '%s' no existe en el sistema", in.Email)
		case errors.Is(err, domain.ErrInvalidInput):
			data["Error"] = mensajesCliente.generico()
		case errors.Is(err, domain.ErrNoEsCliente), errors.Is(err, domain.ErrDuplicate),
			errors.Is(err, domain.ErrDeudaNegativa), errors.Is(err, domain.ErrDeudaInicialInvalida):
			data["Error"] = err.Error()
		default:
			h.log.Warn().Err(err).Str("local", id).Str("email", in.Email).Msg("agregar cliente")
			data["Error"] = "Error: " + err.Error()
		}
		return render(c, "tendero_agregar_cliente", data)
	}
	return c.Redirect(clientesURL(id))
}

// Abono descuenta monto_pago. Un monto no válido se ignora.
func (h *ClienteHandler) Abono(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	if monto, ok := montoFormulario(c, "monto_pago"); ok {
		if _, err := h.clientes.Abonar(c.Context(), id, cid, monto); err != nil {
			h.logDeuda(err, "abono", id, cid)
		}
	}
	return c.Redirect(clientesURL(id))
}

// Cancelar deja la deuda en cero. Un cliente inexistente no se crea.
func (h *ClienteHandler) Cancelar(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	if _, err := h.clientes.Obtener(c.Context(), id, cid); err != nil {
		h.logDeuda(err, "cancelar", id, cid)
		return c.Redirect(clientesURL(id))
	}
	if err := h.clientes.CancelarDeuda(c.Context(), id, cid); err != nil {
		h.logDeuda(err, "cancelar", id, cid)
	}
	return c.Redirect(clientesURL(id))
}

// Sumar registra una nueva deuda (monto_sumar) con plazo_dias opcional.
func (h *ClienteHandler) Sumar(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	monto, ok := montoFormulario(c, "monto_sumar")
	if !ok {
		return c.Redirect(clientesURL(id))
	}
	var plazo *int
	if raw := strings.TrimSpace(c.FormValue("plazo_dias")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Redirect(clientesURL(id))
		}
		plazo = &n
	}
	if _, err := h.clientes.RegistrarDeuda(c.Context(), id, cid, monto, plazo); err != nil {
		h.logDeuda(err, "sumar", id, cid)
	}
	return c.Redirect(clientesURL(id))
}

func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	if err := h.clientes.Eliminar(c.Context(), id, cid); err != nil {
		h.logDeuda(err, "eliminar", id, cid)
	}
	return c.Redirect(clientesURL(id))
}

func (h *ClienteHandler) Historial(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	cliente, err := h.clientes.Obtener(c.Context(), id, cid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Redirect(clientesURL(id))
		}
		return err
	}
	deudas, err := h.clientes.HistorialDeudas(c.Context(), id, cid)
	if err != nil {
		return err
	}
	return render(c, "tendero_historial", fiber.Map{
		"LocalID":   id,
		"LocalName": h.locales.NombreOId(c.Context(), id),
		"Cliente":   cliente,
		"Deudas":    deudas,
	})
}

// EstadoPDF descarga el estado de cuenta del cliente.
func (h *ClienteHandler) EstadoPDF(c *fiber.Ctx) error {
	id, cid := c.Params("id"), c.Params("cid")
	pdf, err := h.estados.Generar(c.Context(), id, cid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		h.log.Error().Err(err).Str("local", id).Str("cliente", cid).Msg("estado de cuenta")
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="estado_%s_%s.pdf"`, id, cid))
	return c.Send(pdf)
}

func (h *ClienteHandler) logDeuda(err error, op, localID, clienteID string) {
	ev := h.log.Error()
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrMontoInvalido) {
		ev = h.log.Warn()
	}
	ev.Err(err).Str("op", op).Str("local", localID).Str("cliente", clienteID).Msg("deuda")
}

func montoFormulario(c *fiber.Ctx, campo string) (float64, bool) {
	monto, err := usecase.ParseMonto(c.FormValue(campo))
	if err != nil || monto <= 0 {
		return 0, false
	}
	return monto, true
}
