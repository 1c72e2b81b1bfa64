package http

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/asistente"
	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/pkg/logger"
)

const (
	msgMensajeVacio = "Mensaje vacío"
	msgMensajeLargo = "Mensaje demasiado largo"
	// maxMensajeChat en caracteres.
	maxMensajeChat = 2000
)

// AIHandler atiende el chat del tendero.
type AIHandler struct {
	asistente *asistente.Asistente
	log       *logger.Logger
}

func NewAIHandler(a *asistente.Asistente, log *logger.Logger) *AIHandler {
	return &AIHandler{asistente: a, log: log}
}

// Chat POST /api/ai_chat {"message"} → {"reply"}.
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil || strings.TrimSpace(in.Message) == "" {
		return errorJSON(c, fiber.StatusBadRequest, msgMensajeVacio)
	}
	if utf8.RuneCountInString(in.Message) > maxMensajeChat {
		return errorJSON(c, fiber.StatusRequestEntityTooLarge, msgMensajeLargo)
	}
	reply, err := h.asistente.Responder(c.Context(), GetUserID(c), in.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, msgMensajeVacio)
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("ai chat")
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.ChatResponse{Reply: reply})
}
