package dto

import "github.com/jhoicas/fiapp/internal/domain/entity"

// ChatRequest cuerpo de POST /api/ai_chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ProveedoresResponse cuerpo de GET /api/proveedores.
type ProveedoresResponse struct {
	Proveedores map[string]*entity.Proveedor `json:"proveedores"`
}
