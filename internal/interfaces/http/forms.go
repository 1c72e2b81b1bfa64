package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/internal/domain/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores usan el nombre del campo del formulario o del JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("userid", func(fl validator.FieldLevel) bool {
		return entity.UserIDValido(fl.Field().String())
	})
	return v
}

// mensajes traduce "campo.tag" al texto que ve el usuario.
type mensajes map[string]string

// Orden en que se reporta el primer error: faltantes primero.
var prioridadTag = map[string]int{"required": 0, "eqfield": 1, "oneof": 1, "min": 2}

// parsearFormulario lee el cuerpo en dst, recorta espacios y valida.
// Devuelve el mensaje a mostrar, o "" si el formulario es válido.
func parsearFormulario(c *fiber.Ctx, dst any, m mensajes) string {
	if err := c.BodyParser(dst); err != nil {
		return m.generico()
	}
	recortar(dst)
	return validar(dst, m)
}

func validar(dst any, m mensajes) string {
	err := validate.Struct(dst)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return m.generico()
	}
	primero := verrs[0]
	for _, fe := range verrs[1:] {
		if prioridad(fe.Tag()) < prioridad(primero.Tag()) {
			primero = fe
		}
	}
	if msg, ok := m[primero.Field()+"."+primero.Tag()]; ok {
		return msg
	}
	if msg, ok := m[primero.Field()]; ok {
		return msg
	}
	return m.generico()
}

func prioridad(tag string) int {
	if p, ok := prioridadTag[tag]; ok {
		return p
	}
	return 3
}

func (m mensajes) generico() string {
	if msg, ok := m["*"]; ok {
		return msg
	}
	return "Datos inválidos"
}

// recortar aplica TrimSpace a los campos string del struct apuntado.
func recortar(dst any) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}

var (
	mensajesRegistro = mensajes{
		"email.required":            "Email es requerido",
		"password.required":         "Contraseña es requerida",
		"password_confirm.required": "Confirma tu contraseña",
		"user_id.required":          "Usuario es requerido",
		"password_confirm.eqfield":  "Las contraseñas no coinciden",
		"password.min":              "Contraseña mínimo 6 caracteres",
		"user_id.userid":            domain.ErrUserIDInvalido.Error(),
		"*":                         "Error al registrar",
	}
	mensajesLogin = mensajes{
		"email.required":    "Email es requerido",
		"password.required": "Contraseña es requerida",
		"*":                 "Email o contraseña incorrectos",
	}
	mensajesTipo = mensajes{
		"*": "Selecciona un tipo válido",
	}
	mensajesLocal = mensajes{
		"*": "Nombre requerido",
	}
	mensajesProducto = mensajes{
		"nombre.required": "Nombre requerido",
		"precio.required": "Precio requerido",
		"stock.required":  "Stock requerido",
		"*":               "Precio y stock deben ser números",
	}
	mensajesEditarProducto = mensajes{
		"*": "Todos los campos son requeridos",
	}
	mensajesCliente = mensajes{
		"*": "Email y deuda son requeridos",
	}
	mensajesProveedor = mensajes{
		"*": "El nombre es requerido",
	}
	mensajesDeudaAPI = mensajes{
		"monto":      "El monto debe ser un número mayor que cero",
		"plazo_dias": "plazo_dias debe ser un entero no negativo",
		"*":          "cuerpo inválido",
	}
)
