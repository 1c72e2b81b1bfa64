package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Helpers para leer documentos del árbol (map[string]any con números float64, como los devuelve el store).

func texto(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Numero interpreta un valor del árbol como float64. ok=false si falta o no es numérico.
func Numero(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func numero(m map[string]any, key string) float64 {
	f, _ := Numero(m[key])
	return f
}

func entero(m map[string]any, key string) int {
	f, ok := Numero(m[key])
	if !ok {
		return 0
	}
	return int(f)
}

// Submapa devuelve m[key] como mapa, o nil si no lo es.
func Submapa(m map[string]any, key string) map[string]any {
	sub, _ := m[key].(map[string]any)
	return sub
}
