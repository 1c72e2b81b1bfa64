package dto

import "github.com/jhoicas/fiapp/internal/domain/entity"

// SetDeudaRequest cuerpo de PUT .../deuda. Deuda puede llegar como número o texto.
type SetDeudaRequest struct {
	Deuda any `json:"deuda"`
}

// RegistrarDeudaRequest cuerpo de POST .../deudas.
type RegistrarDeudaRequest struct {
	Monto     float64 `json:"monto" validate:"gt=0"`
	PlazoDias *int    `json:"plazo_dias" validate:"omitempty,min=0"`
}

// DeudaResponse saldo resultante de una operación de deuda.
type DeudaResponse struct {
	Success bool    `json:"success"`
	Deuda   float64 `json:"deuda"`
}

// HistorialResponse historial de deudas de un cliente, ordenado por fecha.
type HistorialResponse struct {
	Success bool               `json:"success"`
	Deudas  []entity.DeudaItem `json:"deudas"`
}

// DeudasClienteResponse deudas de un cliente en todos los locales, por local_id.
type DeudasClienteResponse map[string]entity.ResumenDeuda
