package ports

import "context"

// ChatService es el puerto de salida hacia un proveedor de LLM (Groq, Gemini, mock).
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type ChatService interface {
	// Completar envía el prompt completo y devuelve el texto de la respuesta (puede ser vacío).
	Completar(ctx context.Context, prompt string) (string, error)
}
