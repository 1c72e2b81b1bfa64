package entity

// Proveedor de un tendero. PropietarioID identifica al tendero que lo creó.
type Proveedor struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Contacto      string `json:"contacto,omitempty"`
	Email         string `json:"email,omitempty"`
	PropietarioID string `json:"propietario_id,omitempty"`
}

// ToMap convierte el proveedor al documento que se guarda en proveedores/{id}.
func (p Proveedor) ToMap() map[string]any {
	data := map[string]any{
		"id":     p.ID,
		"nombre": p.Nombre,
	}
	if p.Contacto != "" {
		data["contacto"] = p.Contacto
	}
	if p.Email != "" {
		data["email"] = p.Email
	}
	if p.PropietarioID != "" {
		data["propietario_id"] = p.PropietarioID
	}
	return data
}

// ProveedorFromMap crea un Proveedor desde un documento del árbol.
func ProveedorFromMap(m map[string]any) *Proveedor {
	if m == nil {
		return nil
	}
	return &Proveedor{
		ID:            texto(m, "id"),
		Nombre:        texto(m, "nombre"),
		Contacto:      texto(m, "contacto"),
		Email:         texto(m, "email"),
		PropietarioID: texto(m, "propietario_id"),
	}
}
