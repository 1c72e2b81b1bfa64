package entity

import (
	"strings"
	"unicode"

	"github.com/jhoicas/fiapp/internal/domain"
)

// Rol es el tipo de usuario. Nace sin asignar y se fija una única vez.
type Rol string

const (
	RolSinAsignar Rol = ""
	RolTendero    Rol = "tendero"
	RolCliente    Rol = "cliente"
)

// ParseRol acepta solo los dos literales conocidos.
func ParseRol(s string) (Rol, error) {
	switch Rol(s) {
	case RolTendero, RolCliente:
		return Rol(s), nil
	default:
		return RolSinAsignar, domain.ErrRolInvalido
	}
}

// Asignado indica si el usuario ya eligió rol.
func (r Rol) Asignado() bool { return r != RolSinAsignar }

// caracteresReservados no pueden aparecer en una clave del árbol.
const caracteresReservados = "/.#$[]"

// UserIDValido indica si id sirve como clave del árbol: sin separadores de ruta,
// sin caracteres reservados y sin espacios ni controles.
func UserIDValido(id string) bool {
	if id == "" || strings.ContainsAny(id, caracteresReservados) {
		return false
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// Usuario registrado, guardado en usuarios/{md5(email)}.
type Usuario struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	UserID       string `json:"user_id"`
	TipoUsuario  Rol    `json:"tipo_usuario"`
}

// AsignarRol fija el rol. Repetir el mismo rol no cambia nada; cambiarlo es un conflicto.
func (u *Usuario) AsignarRol(r Rol) error {
	if _, err := ParseRol(string(r)); err != nil {
		return err
	}
	if u.TipoUsuario.Asignado() && u.TipoUsuario != r {
		return domain.ErrConflict
	}
	u.TipoUsuario = r
	return nil
}

// ToMap serializa al formato del árbol. tipo_usuario es null mientras no haya rol.
func (u Usuario) ToMap() map[string]any {
	var tipo any
	if u.TipoUsuario.Asignado() {
		tipo = string(u.TipoUsuario)
	}
	return map[string]any{
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"user_id":       u.UserID,
		"tipo_usuario":  tipo,
	}
}

// UsuarioFromMap reconstruye un usuario; un tipo desconocido queda sin asignar.
func UsuarioFromMap(m map[string]any) *Usuario {
	if m == nil {
		return nil
	}
	rol, _ := ParseRol(texto(m, "tipo_usuario"))
	return &Usuario{
		Email:        texto(m, "email"),
		PasswordHash: texto(m, "password_hash"),
		UserID:       texto(m, "user_id"),
		TipoUsuario:  rol,
	}
}
