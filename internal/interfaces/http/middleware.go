package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/fiapp/pkg/logger"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = "request_id"
)

// SecurityHeaders aplica la Content-Security-Policy de la app.
// imgSrc agrega orígenes de imágenes (p. ej. el bucket S3).
func SecurityHeaders(imgSrc ...string) fiber.Handler {
	img := strings.TrimSpace("'self' data: " + strings.Join(imgSrc, " "))
	csp := "default-src 'self'; " +
		"script-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src " + img + "; " +
		"connect-src 'self' https://identitytoolkit.googleapis.com https://*.firebaseio.com https://firebaserules.googleapis.com; " +
		"frame-src 'none'; object-src 'none';"
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderContentSecurityPolicy, csp)
		c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		return err
	}
}

// RequestLogger registra cada request con un request id. Los campos de formulario
// van a nivel debug; los que contienen "password" se ocultan.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalRequestID, rid)
		c.Set(HeaderRequestID, rid)

		if c.Method() == fiber.MethodPost || c.Method() == fiber.MethodPut || c.Method() == fiber.MethodPatch {
			if form := formularioRedactado(c); len(form) > 0 {
				log.Debug().Str("request_id", rid).Interface("form", form).Msg("formulario")
			}
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return err
	}
}

func formularioRedactado(c *fiber.Ctx) map[string]string {
	out := map[string]string{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		key := string(k)
		if strings.Contains(strings.ToLower(key), "password") {
			out[key] = "***"
			return
		}
		out[key] = string(v)
	})
	return out
}

// GetRequestID devuelve el request id asignado por RequestLogger.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
