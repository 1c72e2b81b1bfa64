// Package tree implementa la semántica del árbol de documentos (estilo Realtime Database)
// sobre valores JSON en memoria, y un store en memoria con persistencia opcional a archivo.
package tree

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Split separa una ruta en segmentos, ignorando "/" repetidas o en los extremos.
func Split(path string) []string {
	raw := strings.Split(path, "/")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Join une segmentos en una ruta.
func Join(parts ...string) string {
	return strings.Join(Split(strings.Join(parts, "/")), "/")
}

// Normalize convierte un valor Go a su forma JSON genérica (map[string]any, []any, float64, string, bool, nil)
// y poda nulos y mapas vacíos.
func Normalize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("tree: normalizar valor: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("tree: normalizar valor: %w", err)
	}
	return Prune(out), nil
}

// Prune elimina recursivamente hijos nil y mapas vacíos. Devuelve nil si el nodo queda vacío.
func Prune(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	for k, child := range m {
		if c := Prune(child); c == nil {
			delete(m, k)
		} else {
			m[k] = c
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// GetIn devuelve el valor bajo node en la ruta parts, o nil.
func GetIn(node any, parts []string) any {
	cur := node
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[p]
	}
	return cur
}

// SetIn escribe value (ya normalizado) en la ruta y devuelve el nodo resultante.
// Un value nil elimina el nodo; los padres que quedan vacíos también desaparecen.
func SetIn(node any, parts []string, value any) any {
	if len(parts) == 0 {
		return Prune(value)
	}
	m, ok := node.(map[string]any)
	if !ok {
		m = map[string]any{}
	}
	if child := SetIn(m[parts[0]], parts[1:], value); child == nil {
		delete(m, parts[0])
	} else {
		m[parts[0]] = child
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// UpdateIn fusiona values bajo la ruta: cada clave (que puede ser una ruta relativa) se reemplaza.
func UpdateIn(node any, parts []string, values map[string]any) any {
	for k, v := range values {
		full := append(append([]string{}, parts...), Split(k)...)
		node = SetIn(node, full, v)
	}
	return node
}

// Clone devuelve una copia profunda de un valor JSON genérico.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, c := range t {
			out[k] = Clone(c)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, c := range t {
			out[i] = Clone(c)
		}
		return out
	default:
		return v
	}
}
