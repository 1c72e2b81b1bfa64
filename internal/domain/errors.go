package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("El email ya está registrado")
	ErrUserIDEnUso        = errors.New("el nombre de usuario ya está en uso")
	ErrUserIDInvalido     = errors.New("El usuario no puede tener espacios ni los caracteres / . # $ [ ]")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrRolInvalido        = errors.New("tipo_usuario debe ser 'tendero' o 'cliente'")
	ErrDeudaNegativa      = errors.New("La deuda no puede ser negativa")
	ErrDeudaNoNumerica    = errors.New("La deuda debe ser un número")
	ErrMontoInvalido      = errors.New("El monto debe ser un número mayor que cero")
	ErrImagenInvalida     = errors.New("Imagen no válida (PNG, JPG, GIF, WebP; máx 5MB)")

	ErrClienteNoExiste      = errors.New("el cliente no existe en el sistema")
	ErrNoEsCliente          = errors.New("Este usuario no es un cliente")
	ErrDeudaInicialInvalida = errors.New("La deuda debe ser un número válido")
)

// Recursos no encontrados con mensaje propio; errors.Is(err, ErrNotFound) es verdadero.
var (
	ErrLocalNoEncontrado     error = notFound("Local no encontrado")
	ErrProductoNoEncontrado  error = notFound("Producto no encontrado")
	ErrClienteNoEncontrado   error = notFound("Cliente no encontrado")
	ErrProveedorNoEncontrado error = notFound("Proveedor no encontrado")
)

// ErrClienteYaRegistrado es un ErrDuplicate.
var ErrClienteYaRegistrado error = duplicado("Este cliente ya está registrado en esta tienda")

type notFound string

func (e notFound) Error() string        { return string(e) }
func (e notFound) Is(target error) bool { return target == ErrNotFound }

type duplicado string

func (e duplicado) Error() string        { return string(e) }
func (e duplicado) Is(target error) bool { return target == ErrDuplicate }
