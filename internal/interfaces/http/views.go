package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/domain"
)

const layoutBase = "layouts/base"

// render agrega la sesión a los datos y renderiza la vista dentro del layout.
func render(c *fiber.Ctx, vista string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Sesion"] = GetSesion(c)
	return c.Render(vista, data, layoutBase)
}

// ErrorHandler responde JSON bajo /api y texto plano en el resto.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Error interno"
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code, msg = fe.Code, fe.Message
	case errors.Is(err, domain.ErrNotFound):
		code, msg = fiber.StatusNotFound, err.Error()
	}
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}
