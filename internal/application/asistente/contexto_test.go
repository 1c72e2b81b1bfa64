package asistente

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fiapp/internal/domain/entity"
)

func tiendaAna() *entity.Local {
	return &entity.Local{
		ID:     "local_ana_1",
		Nombre: "Tienda Ana",
		Productos: map[string]*entity.Producto{
			"p1": {ID: "p1", Nombre: "Arroz", Precio: 2.5, Stock: 3},
			"p2": {ID: "p2", Nombre: "Leche", Precio: 1, Stock: 20},
		},
		Clientes: map[string]*entity.ClienteLocal{
			"c1": {ID: "c1", Nombre: "Luis", Deuda: 10},
			"c2": {ID: "c2", Email: "b@example.com"},
		},
	}
}

func TestResumenNegocio(t *testing.T) {
	got := ResumenNegocio([]*entity.Local{tiendaAna()})
	assert.Contains(t, got, "Tienda: Tienda Ana")
	assert.Contains(t, got, "  Productos (2):\n    - Arroz: $2.5 (stock: 3)\n    - Leche: $1 (stock: 20)")
	assert.Contains(t, got, "  Clientes: 2 (deudores: 1, deuda total: $10.00)")

	assert.Contains(t, ResumenNegocio(nil), "No tienes locales registrados aún.")
}

func TestResumenNegocio_LimitaProductos(t *testing.T) {
	l := &entity.Local{ID: "l1", Productos: map[string]*entity.Producto{}}
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		l.Productos[id] = &entity.Producto{ID: id, Nombre: id}
	}
	got := ResumenNegocio([]*entity.Local{l})
	assert.Contains(t, got, "Tienda: l1")
	assert.Contains(t, got, "    ... y 2 más")
	assert.NotContains(t, got, "- f:")
}

func TestDatosConsulta(t *testing.T) {
	locales := []*entity.Local{tiendaAna()}

	assert.Equal(t, "Tienda Ana:\n  - Luis: $10.00\n  TOTAL DEUDA: $10.00", DatosConsulta(locales, ConsultaDeudas))
	assert.Equal(t, "Tienda Ana - Productos:\n  - Arroz: $2.50 (stock: 3)\n  - Leche: $1.00 (stock: 20)",
		DatosConsulta(locales, ConsultaProductos))
	assert.Equal(t, "Tienda Ana - Clientes (2):\n  - Luis: Debe: $10.00\n  - b@example.com: Al día",
		DatosConsulta(locales, ConsultaClientes))
	assert.Equal(t, "Tienda Ana - Bajo Stock (<10 unidades):\n  - Arroz: 3 unidades ($2.50)",
		DatosConsulta(locales, ConsultaStock))
}

func TestDatosConsulta_SinDatos(t *testing.T) {
	assert.Equal(t, "No tienes locales registrados.", DatosConsulta(nil, ConsultaDeudas))

	vacio := []*entity.Local{{ID: "l1", Nombre: "Vacía"}}
	assert.Equal(t, "No hay datos disponibles para esa consulta.", DatosConsulta(vacio, ConsultaDeudas))

	bien := []*entity.Local{{ID: "l1", Nombre: "Surtida", Productos: map[string]*entity.Producto{
		"p": {ID: "p", Nombre: "Pan", Stock: 50},
	}}}
	assert.Equal(t, "Surtida: Todo el stock está bien.", DatosConsulta(bien, ConsultaStock))
	assert.Equal(t, "Vacía: Todo el stock está bien.", DatosConsulta(vacio, ConsultaStock))
}
