package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/auth"
	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
	pkgjwt "github.com/jhoicas/fiapp/pkg/jwt"
	"github.com/jhoicas/fiapp/pkg/logger"
)

// AuthHandler maneja registro, login, logout, elección de rol y dashboard.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	sesiones *Sesiones
	log      *logger.Logger
}

func NewAuthHandler(uc *auth.AuthUseCase, sesiones *Sesiones, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, sesiones: sesiones, log: log}
}

func (h *AuthHandler) Index(c *fiber.Ctx) error {
	ses := GetSesion(c)
	return render(c, "index", fiber.Map{"User": ses.UserID, "Role": ses.TipoUsuario})
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", nil)
}

// Register crea el usuario sin rol y lo lleva a elegir tipo.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if msg := parsearFormulario(c, &in, mensajesRegistro); msg != "" {
		return render(c, "register", fiber.Map{"Error": msg, "Email": in.Email, "UserID": in.UserID})
	}
	user, err := h.uc.Registrar(c.Context(), in.Email, in.Password, in.UserID)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrUserIDInvalido):
			msg = err.Error()
		case errors.Is(err, domain.ErrUserIDEnUso):
			msg = fmt.Sprintf("El nombre de usuario '%s' ya está en uso. Elige otro.", in.UserID)
		default:
			h.log.Error().Err(err).Str("email", in.Email).Msg("registro")
			msg = "Error al registrar"
		}
		return render(c, "register", fiber.Map{"Error": msg, "Email": in.Email, "UserID": in.UserID})
	}
	if err := h.sesiones.Guardar(c, pkgjwt.Sesion{UserID: user.UserID, Email: user.Email}); err != nil {
		return err
	}
	return c.Redirect("/select-type")
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", nil)
}

// Login abre sesión. Sin rol asignado, redirige a elegir tipo.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if msg := parsearFormulario(c, &in, mensajesLogin); msg != "" {
		return render(c, "login", fiber.Map{"Error": msg, "Email": in.Email})
	}
	res, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return render(c, "login", fiber.Map{"Error": "Email o contraseña incorrectos", "Email": in.Email})
	}
	ses := pkgjwt.Sesion{UserID: res.UserID, Email: res.Email, TipoUsuario: string(res.TipoUsuario)}
	if err := h.sesiones.Guardar(c, ses); err != nil {
		return err
	}
	if res.TipoUsuario.Asignado() {
		return c.Redirect("/dashboard")
	}
	return c.Redirect("/select-type")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sesiones.Limpiar(c)
	return c.Redirect("/")
}

func (h *AuthHandler) SelectTypeForm(c *fiber.Ctx) error {
	if GetSesion(c).Email == "" {
		return c.Redirect("/login")
	}
	return render(c, "select_type", nil)
}

// SelectType asigna el rol una sola vez y reemite la sesión.
func (h *AuthHandler) SelectType(c *fiber.Ctx) error {
	ses := GetSesion(c)
	if ses.Email == "" {
		return c.Redirect("/login")
	}
	var in dto.SelectTypeRequest
	if msg := parsearFormulario(c, &in, mensajesTipo); msg != "" {
		return render(c, "select_type", fiber.Map{"Error": msg})
	}
	if err := h.uc.AsignarTipo(c.Context(), ses.Email, in.TipoUsuario); err != nil {
		var msg string
		switch {
		case errors.Is(err, domain.ErrRolInvalido):
			msg = "Selecciona un tipo válido"
		case errors.Is(err, domain.ErrConflict):
			msg = "El tipo de usuario ya fue asignado"
		case errors.Is(err, domain.ErrUserNotFound):
			msg = "Usuario no encontrado"
		default:
			h.log.Error().Err(err).Str("email", ses.Email).Msg("asignar tipo")
			msg = "Error al asignar tipo"
		}
		return render(c, "select_type", fiber.Map{"Error": msg})
	}
	ses.TipoUsuario = in.TipoUsuario
	if err := h.sesiones.Guardar(c, ses); err != nil {
		return err
	}
	return c.Redirect("/dashboard")
}

// Dashboard muestra el panel según el rol de la sesión.
func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	switch entity.Rol(GetSesion(c).TipoUsuario) {
	case entity.RolTendero:
		return render(c, "tendero_dashboard", nil)
	case entity.RolCliente:
		return render(c, "cliente_dashboard", nil)
	default:
		return c.Redirect("/login")
	}
}
