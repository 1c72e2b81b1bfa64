package asistente

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TipoConsulta es el tipo de datos del negocio que se adjunta al prompt.
type TipoConsulta string

const (
	ConsultaNinguna   TipoConsulta = ""
	ConsultaDeudas    TipoConsulta = "deudas"
	ConsultaProductos TipoConsulta = "productos"
	ConsultaClientes  TipoConsulta = "clientes"
	ConsultaStock     TipoConsulta = "stock"
)

// El orden importa: gana el primer grupo con coincidencia.
var palabrasClave = []struct {
	tipo     TipoConsulta
	palabras []string
}{
	{ConsultaDeudas, []string{"deuda", "debo", "debe", "pago", "abono", "acreedor"}},
	{ConsultaProductos, []string{"producto", "precio", "caro", "barato", "inventario", "mercancia"}},
	{ConsultaClientes, []string{"cliente", "comprador", "usuario"}},
	{ConsultaStock, []string{"stock", "cantidad", "falta", "poco", "agotado"}},
}

// Clasificar detecta el tipo de consulta por subcadenas, sin distinguir tildes ni mayúsculas.
func Clasificar(msg string) TipoConsulta {
	m := plegar(msg)
	for _, g := range palabrasClave {
		for _, p := range g.palabras {
			if strings.Contains(m, p) {
				return g.tipo
			}
		}
	}
	return ConsultaNinguna
}

// plegar pasa a minúsculas y quita marcas diacríticas (mercancía → mercancia).
func plegar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
