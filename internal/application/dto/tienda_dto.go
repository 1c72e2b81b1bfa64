package dto

// LocalRequest formulario de crear/editar local.
type LocalRequest struct {
	Nombre string `form:"nombre" validate:"required"`
}

// ProductoRequest formulario de producto. Precio y stock llegan como texto y se validan al convertir.
type ProductoRequest struct {
	Nombre    string `form:"nombre" validate:"required"`
	Precio    string `form:"precio" validate:"required"`
	Stock     string `form:"stock" validate:"required"`
	Proveedor string `form:"proveedor"`
}

// ProductoInput datos ya convertidos para el caso de uso.
type ProductoInput struct {
	Nombre    string
	Precio    float64
	Stock     int
	ImagenURL string
	Proveedor string
}

// AgregarClienteRequest formulario para agregar un cliente existente con deuda inicial.
type AgregarClienteRequest struct {
	Email        string `form:"email" validate:"required"`
	DeudaInicial string `form:"deuda_inicial" validate:"required"`
}

// ProveedorRequest formulario de proveedor.
type ProveedorRequest struct {
	Nombre   string `form:"nombre" validate:"required"`
	Contacto string `form:"contacto"`
	Email    string `form:"email"`
}

// ImagenUpload archivo recibido en el campo "imagen".
type ImagenUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
