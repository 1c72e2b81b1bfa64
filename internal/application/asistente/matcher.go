package asistente

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// MensajeAyuda se devuelve cuando el motor local no reconoce el mensaje.
const MensajeAyuda = "Puedo ayudar con cálculos: ejemplos:\n" +
	"- \"3 unidades a 12.50\"\n" +
	"- \"12.5*3+2\"\n" +
	"- \"10% de 250\""

var (
	reAritmetica     = regexp.MustCompile(`^[0-9.\s+\-*/%()]+$`)
	reCantidadPrecio = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*(?:unidades|u|uds)?\s*(?:a|x|por)\s*\$?\s*([0-9]+(?:\.[0-9]+)?)`)
	rePorcentaje     = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*%\s*(?:de)?\s*\$?\s*([0-9]+(?:\.[0-9]+)?)`)
)

// ResponderLocal resuelve cálculos sencillos sin proveedor externo:
// expresiones aritméticas, cantidad por precio y porcentajes.
func ResponderLocal(msg string) string {
	m := strings.ToLower(strings.TrimSpace(msg))
	if m == "" {
		return "Mensaje vacío."
	}

	expr := strings.ReplaceAll(m, ",", ".")
	if reAritmetica.MatchString(expr) {
		if r, err := Evaluar(expr); err == nil {
			return "El resultado es " + r
		}
	}

	if g := reCantidadPrecio.FindStringSubmatch(m); g != nil {
		qty, err1 := strconv.ParseFloat(g[1], 64)
		precio, err2 := strconv.ParseFloat(g[2], 64)
		if err1 == nil && err2 == nil {
			return fmt.Sprintf("%s × %s = %s (total)", cantidad(qty), reprFloat(precio), dosDecimales(qty*precio))
		}
	}

	if g := rePorcentaje.FindStringSubmatch(m); g != nil {
		pct, err1 := strconv.ParseFloat(g[1], 64)
		base, err2 := strconv.ParseFloat(g[2], 64)
		if err1 == nil && err2 == nil {
			return fmt.Sprintf("%s%% de %s = %s", reprFloat(pct), reprFloat(base), dosDecimales(base*pct/100))
		}
	}

	return MensajeAyuda
}

// cantidad muestra 3 en vez de 3.0 cuando no hay parte decimal.
func cantidad(q float64) string {
	if math.IsInf(q, 0) || q != math.Trunc(q) {
		return reprFloat(q)
	}
	i, _ := big.NewFloat(q).Int(nil)
	return i.String()
}

func dosDecimales(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return reprFloat(f)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
