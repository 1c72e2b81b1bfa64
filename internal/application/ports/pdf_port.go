package ports

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoEstado línea del estado de cuenta.
type MovimientoEstado struct {
	Fecha       time.Time
	Monto       decimal.Decimal
	PlazoDias   *int
	Vencimiento *time.Time
}

// EstadoCuenta datos para renderizar el estado de cuenta de un cliente en un local.
type EstadoCuenta struct {
	NombreLocal   string
	LocalID       string
	ClienteNombre string
	ClienteEmail  string
	Movimientos   []MovimientoEstado
	TotalCargado  decimal.Decimal
	SaldoActual   decimal.Decimal
	GeneradoEn    time.Time
}

// EstadoCuentaGenerator define el puerto para generar el PDF del estado de cuenta.
type EstadoCuentaGenerator interface {
	Generar(estado *EstadoCuenta) ([]byte, error)
}
