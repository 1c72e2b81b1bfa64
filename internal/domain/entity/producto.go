package entity

// Producto del inventario de un local.
// ImagenURL es relativa a /static/productos/...; Proveedor guarda el id del proveedor.
type Producto struct {
	ID        string  `json:"-"`
	Nombre    string  `json:"nombre"`
	Precio    float64 `json:"precio"`
	Stock     int     `json:"stock"`
	ImagenURL string  `json:"imagen_url,omitempty"`
	Proveedor string  `json:"proveedor,omitempty"`
}

func (p Producto) ToMap() map[string]any {
	data := map[string]any{
		"nombre": p.Nombre,
		"precio": p.Precio,
		"stock":  p.Stock,
	}
	if p.ImagenURL != "" {
		data["imagen_url"] = p.ImagenURL
	}
	if p.Proveedor != "" {
		data["proveedor"] = p.Proveedor
	}
	return data
}

func ProductoFromMap(id string, m map[string]any) *Producto {
	if m == nil {
		return nil
	}
	return &Producto{
		ID:        id,
		Nombre:    texto(m, "nombre"),
		Precio:    numero(m, "precio"),
		Stock:     entero(m, "stock"),
		ImagenURL: texto(m, "imagen_url"),
		Proveedor: texto(m, "proveedor"),
	}
}
