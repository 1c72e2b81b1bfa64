package repository

import "context"

// TreeStore es el puerto del árbol jerárquico de documentos.
// Las rutas son segmentos separados por "/" (ej. "locales/l1/productos/p1").
// Escribir nil elimina el nodo; los mapas vacíos no se guardan; Update fusiona hijos.
type TreeStore interface {
	// Get devuelve el valor en la ruta, o nil si no existe.
	Get(ctx context.Context, path string) (any, error)
	Set(ctx context.Context, path string, value any) error
	Update(ctx context.Context, path string, values map[string]any) error
	Delete(ctx context.Context, path string) error
}
