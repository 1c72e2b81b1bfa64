package asistente

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClasificar(t *testing.T) {
	casos := map[string]TipoConsulta{
		"¿Cuánto me DEBE Juan?":        ConsultaDeudas,
		"precio de la mercancía":       ConsultaProductos,
		"MERCANCÍA nueva":              ConsultaProductos,
		"¿qué cliente compró más?":     ConsultaClientes,
		"¿qué está agotado?":           ConsultaStock,
		"stock de productos":           ConsultaProductos,
		"registra un abono del cliente": ConsultaDeudas,
		"hola":                         ConsultaNinguna,
	}
	for in, want := range casos {
		assert.Equal(t, want, Clasificar(in), in)
	}
}
