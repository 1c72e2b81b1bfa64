package http_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProveedores_CrearListarAPI(t *testing.T) {
	a := newTestApp(t)

	resp := a.postForm(t, "/tendero/proveedores/create", url.Values{"nombre": {"  "}}, tendero(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "El nombre es requerido")

	resp = a.postForm(t, "/tendero/proveedores/create", url.Values{"nombre": {"Lácteos SA"}, "contacto": {"300 123"}}, tendero(t))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tendero/proveedores", resp.Header.Get("Location"))

	// Proveedor de otro tendero: no debe aparecer.
	otro := cookie(t, "luis", "luis@example.com", "tendero")
	resp = a.postForm(t, "/tendero/proveedores/create", url.Values{"nombre": {"Panadería"}}, otro)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp = a.get(t, "/tendero/proveedores", tendero(t))
	html := body(t, resp)
	assert.Contains(t, html, "Lácteos SA")
	assert.NotContains(t, html, "Panadería")

	resp = a.get(t, "/api/proveedores", tendero(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Proveedores map[string]struct {
			Nombre        string `json:"nombre"`
			Contacto      string `json:"contacto"`
			PropietarioID string `json:"propietario_id"`
		} `json:"proveedores"`
	}
	require.NoError(t, json.Unmarshal([]byte(body(t, resp)), &out))
	require.Len(t, out.Proveedores, 1)
	for id, p := range out.Proveedores {
		assert.NotEmpty(t, id)
		assert.Equal(t, "Lácteos SA", p.Nombre)
		assert.Equal(t, "300 123", p.Contacto)
		assert.Equal(t, "ana", p.PropietarioID)

		resp = a.postForm(t, "/tendero/proveedores/"+id+"/editar", url.Values{"nombre": {"Lácteos del Valle"}}, tendero(t))
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Contains(t, body(t, a.get(t, "/tendero/proveedores", tendero(t))), "Lácteos del Valle")

		resp = a.postForm(t, "/tendero/proveedores/"+id+"/delete", nil, tendero(t))
		assert.Equal(t, http.StatusFound, resp.StatusCode)
	}

	resp = a.get(t, "/api/proveedores", tendero(t))
	assert.JSONEq(t, `{"proveedores":{}}`, body(t, resp))
}
