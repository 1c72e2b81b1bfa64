package asistente

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/fiapp/internal/domain/entity"
)

const (
	maxProductosResumen = 5
	maxDetalle          = 10
	umbralBajoStock     = 10
)

func nombreLocal(l *entity.Local) string {
	if l.Nombre != "" {
		return l.Nombre
	}
	return l.ID
}

func nombreProducto(p *entity.Producto) string {
	if p.Nombre != "" {
		return p.Nombre
	}
	return "Sin nombre"
}

// precioCorto muestra 2 o 2.5, sin ceros de relleno.
func precioCorto(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ResumenNegocio describe todas las tiendas del tendero: primeros productos y estado de deudas.
func ResumenNegocio(locales []*entity.Local) string {
	var b strings.Builder
	b.WriteString("CONTEXTO DE TU NEGOCIO:\n")
	if len(locales) == 0 {
		b.WriteString("No tienes locales registrados aún.")
		return b.String()
	}
	for _, l := range locales {
		fmt.Fprintf(&b, "\nTienda: %s\n", nombreLocal(l))

		productos := l.ProductosOrdenados()
		if len(productos) > 0 {
			fmt.Fprintf(&b, "  Productos (%d):\n", len(productos))
			for i, p := range productos {
				if i == maxProductosResumen {
					fmt.Fprintf(&b, "    ... y %d más\n", len(productos)-maxProductosResumen)
					break
				}
				fmt.Fprintf(&b, "    - %s: $%s (stock: %d)\n", nombreProducto(p), precioCorto(p.Precio), p.Stock)
			}
		}

		clientes := l.ClientesOrdenados()
		if len(clientes) > 0 {
			deudores, total := 0, 0.0
			for _, c := range clientes {
				if c.Deuda > 0 {
					deudores++
					total += c.Deuda
				}
			}
			fmt.Fprintf(&b, "  Clientes: %d (deudores: %d, deuda total: $%.2f)\n", len(clientes), deudores, total)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// DatosConsulta devuelve el detalle del tipo de consulta para cada tienda.
func DatosConsulta(locales []*entity.Local, tipo TipoConsulta) string {
	if len(locales) == 0 {
		return "No tienes locales registrados."
	}
	var bloques []string
	for _, l := range locales {
		var s string
		switch tipo {
		case ConsultaDeudas:
			s = consultaDeudas(l)
		case ConsultaProductos:
			s = consultaProductos(l)
		case ConsultaClientes:
			s = consultaClientes(l)
		case ConsultaStock:
			s = consultaStock(l)
		}
		if s != "" {
			bloques = append(bloques, s)
		}
	}
	if len(bloques) == 0 {
		return "No hay datos disponibles para esa consulta."
	}
	return strings.Join(bloques, "\n\n")
}

func consultaDeudas(l *entity.Local) string {
	var deudores []*entity.ClienteLocal
	for _, c := range l.ClientesOrdenados() {
		if c.Deuda > 0 {
			deudores = append(deudores, c)
		}
	}
	if len(deudores) == 0 {
		return ""
	}
	sort.SliceStable(deudores, func(i, j int) bool { return deudores[i].Deuda > deudores[j].Deuda })

	lineas := []string{nombreLocal(l) + ":"}
	total := 0.0
	for _, c := range deudores {
		lineas = append(lineas, fmt.Sprintf("  - %s: $%.2f", c.NombreVisible(), c.Deuda))
		total += c.Deuda
	}
	lineas = append(lineas, fmt.Sprintf("  TOTAL DEUDA: $%.2f", total))
	return strings.Join(lineas, "\n")
}

func consultaProductos(l *entity.Local) string {
	productos := l.ProductosOrdenados()
	if len(productos) == 0 {
		return ""
	}
	sort.SliceStable(productos, func(i, j int) bool { return productos[i].Precio > productos[j].Precio })

	lineas := []string{nombreLocal(l) + " - Productos:"}
	for i, p := range productos {
		if i == maxDetalle {
			lineas = append(lineas, fmt.Sprintf("  ... y %d más", len(productos)-maxDetalle))
			break
		}
		lineas = append(lineas, fmt.Sprintf("  - %s: $%.2f (stock: %d)", nombreProducto(p), p.Precio, p.Stock))
	}
	return strings.Join(lineas, "\n")
}

func consultaClientes(l *entity.Local) string {
	clientes := l.ClientesOrdenados()
	if len(clientes) == 0 {
		return ""
	}
	lineas := []string{fmt.Sprintf("%s - Clientes (%d):", nombreLocal(l), len(clientes))}
	for i, c := range clientes {
		if i == maxDetalle {
			lineas = append(lineas, fmt.Sprintf("  ... y %d más", len(clientes)-maxDetalle))
			break
		}
		estado := "Al día"
		if c.Deuda > 0 {
			estado = fmt.Sprintf("Debe: $%.2f", c.Deuda)
		}
		lineas = append(lineas, fmt.Sprintf("  - %s: %s", c.NombreVisible(), estado))
	}
	return strings.Join(lineas, "\n")
}

// consultaStock siempre informa la tienda, tenga o no productos.
func consultaStock(l *entity.Local) string {
	productos := l.ProductosOrdenados()
	var bajos []*entity.Producto
	for _, p := range productos {
		if p.Stock < umbralBajoStock {
			bajos = append(bajos, p)
		}
	}
	if len(bajos) == 0 {
		return nombreLocal(l) + ": Todo el stock está bien."
	}
	sort.SliceStable(bajos, func(i, j int) bool { return bajos[i].Stock < bajos[j].Stock })

	lineas := []string{fmt.Sprintf("%s - Bajo Stock (<%d unidades):", nombreLocal(l), umbralBajoStock)}
	for _, p := range bajos {
		lineas = append(lineas, fmt.Sprintf("  - %s: %d unidades ($%.2f)", nombreProducto(p), p.Stock, p.Precio))
	}
	return strings.Join(lineas, "\n")
}
