package dto

import "github.com/jhoicas/fiapp/internal/domain/entity"

// RegisterRequest formulario de registro.
type RegisterRequest struct {
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required,min=6"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
	UserID          string `form:"user_id" validate:"required,userid"`
}

// LoginRequest formulario de inicio de sesión.
type LoginRequest struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// SelectTypeRequest formulario de elección de rol.
type SelectTypeRequest struct {
	TipoUsuario string `form:"tipo_usuario" validate:"required,oneof=tendero cliente"`
}

// LoginResult datos de sesión tras un login correcto. TipoUsuario puede estar sin asignar.
type LoginResult struct {
	UserID      string
	Email       string
	TipoUsuario entity.Rol
}
