package entity

import (
	"sort"
	"time"
)

// ClienteLocal es el registro de un cliente dentro de un local.
// ID es el user_id del usuario cliente; Deuda es el saldo acumulado.
type ClienteLocal struct {
	ID     string               `json:"-"`
	Email  string               `json:"email"`
	Nombre string               `json:"nombre"`
	Deuda  float64              `json:"deuda"`
	Deudas map[string]DeudaItem `json:"deudas,omitempty"`
}

func (c ClienteLocal) ToMap() map[string]any {
	data := map[string]any{
		"email":  c.Email,
		"nombre": c.Nombre,
		"deuda":  c.Deuda,
	}
	if len(c.Deudas) > 0 {
		deudas := make(map[string]any, len(c.Deudas))
		for k, d := range c.Deudas {
			deudas[k] = d.ToMap()
		}
		data["deudas"] = deudas
	}
	return data
}

// NombreVisible devuelve nombre, email o id, en ese orden.
func (c ClienteLocal) NombreVisible() string {
	switch {
	case c.Nombre != "":
		return c.Nombre
	case c.Email != "":
		return c.Email
	default:
		return c.ID
	}
}

func ClienteLocalFromMap(id string, m map[string]any) *ClienteLocal {
	if m == nil {
		return nil
	}
	return &ClienteLocal{
		ID:     id,
		Email:  texto(m, "email"),
		Nombre: texto(m, "nombre"),
		Deuda:  numero(m, "deuda"),
		Deudas: DeudasFromMap(Submapa(m, "deudas")),
	}
}

// DeudaItem es una entrada del historial de deudas (deudas/{timestamp}).
type DeudaItem struct {
	Clave     string  `json:"-"`
	Monto     float64 `json:"monto"`
	Timestamp int64   `json:"timestamp"`
	PlazoDias *int    `json:"plazo_dias,omitempty"`
}

func (d DeudaItem) ToMap() map[string]any {
	data := map[string]any{
		"monto":     d.Monto,
		"timestamp": d.Timestamp,
	}
	if d.PlazoDias != nil {
		data["plazo_dias"] = *d.PlazoDias
	}
	return data
}

// Fecha devuelve el instante en que se registró la deuda.
func (d DeudaItem) Fecha() time.Time {
	return time.Unix(d.Timestamp, 0)
}

// Vencimiento devuelve la fecha límite si la deuda tiene plazo.
func (d DeudaItem) Vencimiento() (time.Time, bool) {
	if d.PlazoDias == nil {
		return time.Time{}, false
	}
	return d.Fecha().AddDate(0, 0, *d.PlazoDias), true
}

func DeudaItemFromMap(clave string, m map[string]any) DeudaItem {
	d := DeudaItem{
		Clave:     clave,
		Monto:     numero(m, "monto"),
		Timestamp: int64(numero(m, "timestamp")),
	}
	if _, ok := m["plazo_dias"]; ok {
		if f, ok := Numero(m["plazo_dias"]); ok {
			p := int(f)
			d.PlazoDias = &p
		}
	}
	return d
}

func DeudasFromMap(m map[string]any) map[string]DeudaItem {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]DeudaItem, len(m))
	for k, raw := range m {
		if dm, ok := raw.(map[string]any); ok {
			out[k] = DeudaItemFromMap(k, dm)
		}
	}
	return out
}

// OrdenarDeudas devuelve el historial ordenado del más antiguo al más reciente.
func OrdenarDeudas(m map[string]DeudaItem) []DeudaItem {
	out := make([]DeudaItem, 0, len(m))
	for _, d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].Clave < out[j].Clave
	})
	return out
}

// ResumenDeuda es la deuda de un cliente en un local, vista desde el cliente.
type ResumenDeuda struct {
	NombreLocal string  `json:"nombre_local"`
	DeudaTotal  float64 `json:"deuda_total"`
}
