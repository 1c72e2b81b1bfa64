package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	"github.com/jhoicas/fiapp/pkg/config"
	pkgjwt "github.com/jhoicas/fiapp/pkg/jwt"
)

// LocalSesion clave de c.Locals con la sesión del request.
const LocalSesion = "sesion"

// Sesiones firma y lee la cookie de sesión (JWT HS256).
type Sesiones struct {
	cfg config.SessionConfig
}

func NewSesiones(cfg config.SessionConfig) *Sesiones {
	if cfg.CookieName == "" {
		cfg.CookieName = "fiapp_session"
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = 60 * 24
	}
	return &Sesiones{cfg: cfg}
}

// Cargar deja la sesión en c.Locals. Una cookie inválida o expirada equivale a no tener sesión.
func (s *Sesiones) Cargar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ses pkgjwt.Sesion
		if tok := c.Cookies(s.cfg.CookieName); tok != "" {
			if parsed, err := pkgjwt.Parse(s.cfg.Secret, tok); err == nil {
				ses = parsed
			} else {
				s.Limpiar(c)
			}
		}
		c.Locals(LocalSesion, ses)
		return c.Next()
	}
}

// Guardar emite la cookie con la sesión dada y la deja en c.Locals.
func (s *Sesiones) Guardar(c *fiber.Ctx, ses pkgjwt.Sesion) error {
	tok, err := pkgjwt.Generate(s.cfg.Secret, ses, s.cfg.Issuer, s.cfg.Expiration)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     s.cfg.CookieName,
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(s.cfg.Expiration) * time.Minute),
		HTTPOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(LocalSesion, ses)
	return nil
}

// Limpiar borra la cookie de sesión.
func (s *Sesiones) Limpiar(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(LocalSesion, pkgjwt.Sesion{})
}

// GetSesion devuelve la sesión del request (vacía si no hay).
func GetSesion(c *fiber.Ctx) pkgjwt.Sesion {
	ses, _ := c.Locals(LocalSesion).(pkgjwt.Sesion)
	return ses
}

// GetUserID devuelve el user_id de la sesión.
func GetUserID(c *fiber.Ctx) string {
	return GetSesion(c).UserID
}

// RequireTipo redirige a /login si la sesión no tiene el rol pedido.
func RequireTipo(rol entity.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSesion(c).TipoUsuario != string(rol) {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// RequireTipoAPI responde 401 JSON si la sesión no tiene el rol pedido.
func RequireTipoAPI(rol entity.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSesion(c).TipoUsuario != string(rol) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "No autorizado"})
		}
		return c.Next()
	}
}
