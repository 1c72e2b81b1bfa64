package dto

// ErrorResponse cuerpo de error de las APIs JSON.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse respuesta mínima de éxito.
type SuccessResponse struct {
	Success bool `json:"success"`
}
