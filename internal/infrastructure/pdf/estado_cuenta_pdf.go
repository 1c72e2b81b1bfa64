// Package pdf genera el estado de cuenta de un cliente con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del local       │  ESTADO DE CUENTA + fecha │
//	│  CLIENTE: nombre + email                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Monto | Plazo | Vence                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total cargado / SALDO ACTUAL                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiapp/internal/application/ports"
)

var _ ports.EstadoCuentaGenerator = (*EstadoCuentaPDF)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const formatoFecha = "02/01/2006"

// EstadoCuentaPDF implementa ports.EstadoCuentaGenerator usando Maroto v2.
type EstadoCuentaPDF struct{}

func NewEstadoCuentaPDF() *EstadoCuentaPDF { return &EstadoCuentaPDF{} }

// Generar renderiza el estado de cuenta y devuelve los bytes del PDF.
func (g *EstadoCuentaPDF) Generar(e *ports.EstadoCuenta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta", true).
		WithAuthor(e.NombreLocal, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(e))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(e))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(e.Movimientos) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range movimientoRows(e.Movimientos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(e))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(e *ports.EstadoCuenta) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(e.NombreLocal, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Local: "+e.LocalID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+e.GeneradoEn.Format(formatoFecha+" 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func clienteRow(e *ports.EstadoCuenta) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(e.ClienteNombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Email: "+nonEmpty(e.ClienteEmail, "-"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Monto", 3, align.Right),
		h("Plazo", 3, align.Center),
		h("Vence", 3, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func movimientoRows(movs []ports.MovimientoEstado) []core.Row {
	result := make([]core.Row, 0, len(movs))
	for _, mv := range movs {
		plazo, vence := "-", "-"
		if mv.PlazoDias != nil {
			plazo = fmt.Sprintf("%d días", *mv.PlazoDias)
		}
		if mv.Vencimiento != nil {
			vence = mv.Vencimiento.Format(formatoFecha)
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(mv.Fecha.Format(formatoFecha+" 15:04"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New("$"+formatMoney(mv.Monto), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(plazo, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(vence, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

func totalesRow(e *ports.EstadoCuenta) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Total cargado:", 1),
			text.New("SALDO ACTUAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 8,
			}),
		),
		col.New(3).Add(
			value("$"+formatMoney(e.TotalCargado), 1),
			text.New("$"+formatMoney(e.SaldoActual), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 8,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney usa puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", -1234.5 → "-1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	entero, dec, _ := strings.Cut(s, ".")
	n := len(entero)
	buf := make([]byte, 0, n+n/3+4)
	if d.IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(entero) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf) + "," + dec
}
