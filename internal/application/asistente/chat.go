package asistente

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/fiapp/internal/application/ports"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/pkg/logger"
)

// MensajeSinContenido se devuelve cuando el proveedor responde vacío.
const MensajeSinContenido = "El proveedor externo respondió sin contenido."

const timeoutPorDefecto = 15 * time.Second

// LocalesLister lista las tiendas de un tendero con sus productos y clientes.
type LocalesLister interface {
	ListarPorPropietario(ctx context.Context, propietarioID string) ([]*entity.Local, error)
}

// Asistente responde el chat del tendero. Sin proveedor configurado usa solo el motor local.
type Asistente struct {
	chat    ports.ChatService
	locales LocalesLister
	timeout time.Duration
	log     *logger.Logger
}

// NewAsistente construye el asistente. chat puede ser nil.
func NewAsistente(chat ports.ChatService, locales LocalesLister, timeout time.Duration, log *logger.Logger) *Asistente {
	if timeout <= 0 {
		timeout = timeoutPorDefecto
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Asistente{chat: chat, locales: locales, timeout: timeout, log: log}
}

// Responder contesta el mensaje. Devuelve domain.ErrInvalidInput si está vacío.
// Un fallo del proveedor no es error: se responde con el motor local.
func (a *Asistente) Responder(ctx context.Context, tenderoID, mensaje string) (string, error) {
	msg := strings.TrimSpace(mensaje)
	if msg == "" {
		return "", domain.ErrInvalidInput
	}
	if a.chat == nil {
		return ResponderLocal(msg), nil
	}

	prompt := a.construirPrompt(ctx, tenderoID, msg)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	reply, err := a.chat.Completar(ctx, prompt)
	if err != nil {
		a.log.Warn().Err(err).Str("tendero", tenderoID).Msg("proveedor de IA falló, usando motor local")
		return ResponderLocal(msg), nil
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return MensajeSinContenido, nil
	}
	return reply, nil
}

func (a *Asistente) construirPrompt(ctx context.Context, tenderoID, msg string) string {
	contexto, datos := "No hay datos disponibles.", ""
	locales, err := a.locales.ListarPorPropietario(ctx, tenderoID)
	if err != nil {
		a.log.Error().Err(err).Str("tendero", tenderoID).Msg("no se pudo leer el negocio para el asistente")
	} else {
		contexto = ResumenNegocio(locales)
		if tipo := Clasificar(msg); tipo != ConsultaNinguna {
			datos = DatosConsulta(locales, tipo)
			a.log.Debug().Str("consulta", string(tipo)).Msg("datos adjuntos al prompt")
		}
	}
	return Prompt(contexto, datos, msg)
}

// Prompt arma el mensaje que se envía al modelo.
func Prompt(contexto, datos, msg string) string {
	var b strings.Builder
	b.WriteString("Eres un asistente de negocios para tenderos. Responde preguntas sobre sus tiendas, productos, clientes y deudas.\n\n")
	b.WriteString(contexto)
	b.WriteString("\n\n")
	if datos != "" {
		fmt.Fprintf(&b, "DATOS CONSULTADOS (actualizados en tiempo real):\n%s\n\n", datos)
	}
	fmt.Fprintf(&b, "Pregunta del usuario: %s\n\n", msg)
	b.WriteString("Responde de forma concisa, útil y en español. Si pregunta sobre datos específicos, utiliza los datos que se proporcionaron arriba.")
	return b.String()
}
