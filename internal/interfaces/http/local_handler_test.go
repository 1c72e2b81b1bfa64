package http_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocales_CrearEditarEliminar(t *testing.T) {
	a := newTestApp(t)

	resp := a.postForm(t, "/tendero/locales/create", url.Values{"nombre": {" "}}, tendero(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Nombre requerido")

	resp = a.postForm(t, "/tendero/locales/create", url.Values{"nombre": {"Tienda Ana"}}, tendero(t))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tendero/locales", resp.Header.Get("Location"))

	raw, err := a.store.Get(context.Background(), "locales")
	require.NoError(t, err)
	locales, _ := raw.(map[string]any)
	require.Len(t, locales, 1)
	var id string
	for k := range locales {
		id = k
	}

	resp = a.get(t, "/tendero/locales", tendero(t))
	assert.Contains(t, body(t, resp), "Tienda Ana")

	resp = a.postForm(t, "/tendero/locales/"+id+"/editar", url.Values{"nombre": {"Tienda Centro"}}, tendero(t))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	resp = a.get(t, "/tendero/locales/"+id+"/inventario", tendero(t))
	assert.Contains(t, body(t, resp), "Inventario de Tienda Centro")

	resp = a.postForm(t, "/tendero/locales/"+id+"/eliminar", nil, tendero(t))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	raw, err = a.store.Get(context.Background(), "locales")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestLocales_SoloLosDelTendero(t *testing.T) {
	a := newTestApp(t)
	a.sembrarLocal(t, 0)
	otro := cookie(t, "luis", "luis@example.com", "tendero")

	resp := a.get(t, "/tendero/locales", otro)
	assert.NotContains(t, body(t, resp), "Tienda Ana")
}
