package entity

import "sort"

// Local (tienda) de un tendero, con sus productos y clientes anidados.
type Local struct {
	ID            string                   `json:"-"`
	Nombre        string                   `json:"nombre"`
	PropietarioID string                   `json:"propietario_id"`
	Productos     map[string]*Producto     `json:"productos,omitempty"`
	Clientes      map[string]*ClienteLocal `json:"clientes,omitempty"`
}

// ToMap serializa el local completo.
func (l Local) ToMap() map[string]any {
	productos := make(map[string]any, len(l.Productos))
	for id, p := range l.Productos {
		productos[id] = p.ToMap()
	}
	clientes := make(map[string]any, len(l.Clientes))
	for id, c := range l.Clientes {
		clientes[id] = c.ToMap()
	}
	return map[string]any{
		"nombre":         l.Nombre,
		"propietario_id": l.PropietarioID,
		"productos":      productos,
		"clientes":       clientes,
	}
}

// ToCreateMap es el documento inicial al crear el local (sin subárboles).
func (l Local) ToCreateMap() map[string]any {
	return map[string]any{
		"nombre":         l.Nombre,
		"propietario_id": l.PropietarioID,
	}
}

func LocalFromMap(id string, m map[string]any) *Local {
	if m == nil {
		return nil
	}
	l := &Local{
		ID:            id,
		Nombre:        texto(m, "nombre"),
		PropietarioID: texto(m, "propietario_id"),
		Productos:     map[string]*Producto{},
		Clientes:      map[string]*ClienteLocal{},
	}
	for pid, raw := range Submapa(m, "productos") {
		if pm, ok := raw.(map[string]any); ok {
			l.Productos[pid] = ProductoFromMap(pid, pm)
		}
	}
	for cid, raw := range Submapa(m, "clientes") {
		if cm, ok := raw.(map[string]any); ok {
			l.Clientes[cid] = ClienteLocalFromMap(cid, cm)
		}
	}
	return l
}

// ProductosOrdenados devuelve los productos ordenados por id (orden estable para vistas).
func (l Local) ProductosOrdenados() []*Producto {
	out := make([]*Producto, 0, len(l.Productos))
	for _, p := range l.Productos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ClientesOrdenados devuelve los clientes ordenados por id.
func (l Local) ClientesOrdenados() []*ClienteLocal {
	out := make([]*ClienteLocal, 0, len(l.Clientes))
	for _, c := range l.Clientes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
