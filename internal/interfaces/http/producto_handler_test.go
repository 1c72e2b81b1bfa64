package http_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiapp/internal/domain/entity"
)

var pngMinimo = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func multipartProducto(t *testing.T, campos map[string]string, archivo string, contenido []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range campos {
		require.NoError(t, w.WriteField(k, v))
	}
	if archivo != "" {
		fw, err := w.CreateFormFile("imagen", archivo)
		require.NoError(t, err)
		_, err = fw.Write(contenido)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func (a *testApp) postMultipart(t *testing.T, path string, buf *bytes.Buffer, ct string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, buf)
	req.Header.Set("Content-Type", ct)
	return a.do(t, req, tendero(t))
}

func (a *testApp) productos(t *testing.T) map[string]*entity.Producto {
	t.Helper()
	raw, err := a.store.Get(context.Background(), "locales/l1")
	require.NoError(t, err)
	m, _ := raw.(map[string]any)
	return entity.LocalFromMap("l1", m).Productos
}

func TestCrearProducto_Validaciones(t *testing.T) {
	a := newTestApp(t)
	a.sembrarLocal(t, 0)

	cases := []struct {
		name   string
		campos map[string]string
		msg    string
	}{
		{"sin nombre", map[string]string{"precio": "1", "stock": "1"}, "Nombre requerido"},
		{"sin precio", map[string]string{"nombre": "Pan", "stock": "1"}, "Precio requerido"},
		{"sin stock", map[string]string{"nombre": "Pan", "precio": "1"}, "Stock requerido"},
		{"precio no numérico", map[string]string{"nombre": "Pan", "precio": "uno", "stock": "1"}, "Precio y stock deben ser números"},
		{"stock decimal", map[string]string{"nombre": "Pan", "precio": "1", "stock": "1.5"}, "Precio y stock deben ser números"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf, ct := multipartProducto(t, tc.campos, "", nil)
			resp := a.postMultipart(t, "/tendero/locales/l1/productos/create", buf, ct)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body(t, resp), tc.msg)
		})
	}
	assert.Empty(t, a.productos(t))
}

func TestCrearProducto_ConImagen(t *testing.T) {
	a := newTestApp(t)
	a.sembrarLocal(t, 0)
	campos := map[string]string{"nombre": "Leche", "precio": "2,5", "stock": "12"}

	t.Run("extensión no permitida", func(t *testing.T) {
		buf, ct := multipartProducto(t, campos, "virus.exe", pngMinimo)
		resp := a.postMultipart(t, "/tendero/locales/l1/productos/create", buf, ct)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body(t, resp), "Imagen no válida")
		assert.Empty(t, a.productos(t))
	})

	t.Run("png válido", func(t *testing.T) {
		buf, ct := multipartProducto(t, campos, "leche.png", pngMinimo)
		resp := a.postMultipart(t, "/tendero/locales/l1/productos/create", buf, ct)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/tendero/locales/l1/inventario", resp.Header.Get("Location"))

		productos := a.productos(t)
		require.Len(t, productos, 1)
		for _, p := range productos {
			assert.Equal(t, "Leche", p.Nombre)
			assert.Equal(t, 2.5, p.Precio)
			assert.Equal(t, 12, p.Stock)
			require.True(t, strings.HasPrefix(p.ImagenURL, "/static/productos/producto_"), p.ImagenURL)
			_, err := os.Stat(filepath.Join(a.uploads, "productos", filepath.Base(p.ImagenURL)))
			assert.NoError(t, err)
		}
	})
}

func TestEditarYEliminarProducto(t *testing.T) {
	a := newTestApp(t)
	a.sembrarLocal(t, 0)
	require.NoError(t, a.store.Set(context.Background(), "locales/l1/productos/p1", map[string]any{
		"nombre": "Pan", "precio": 1.0, "stock": 10, "imagen_url": "/static/productos/pan.png",
	}))

	resp := a.get(t, "/tendero/locales/l1/productos/nada/editar", tendero(t))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tendero/locales/l1/inventario", resp.Header.Get("Location"))

	resp = a.get(t, "/tendero/locales/l1/productos/p1/editar", tendero(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.postForm(t, "/tendero/locales/l1/productos/p1/editar", url.Values{"nombre": {"Pan"}, "precio": {""}, "stock": {"3"}}, tendero(t))
	assert.Contains(t, body(t, resp), "Todos los campos son requeridos")

	resp = a.postForm(t, "/tendero/locales/l1/productos/p1/editar", url.Values{"nombre": {"Pan integral"}, "precio": {"1.2"}, "stock": {"8"}}, tendero(t))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	p := a.productos(t)["p1"]
	require.NotNil(t, p)
	assert.Equal(t, "Pan integral", p.Nombre)
	assert.Equal(t, 8, p.Stock)
	assert.Equal(t, "/static/productos/pan.png", p.ImagenURL, "sin archivo nuevo se conserva la imagen")

	resp = a.get(t, "/tendero/locales/l1/inventario", tendero(t))
	assert.Contains(t, body(t, resp), "Pan integral")

	resp = a.postForm(t, "/tendero/locales/l1/productos/p1/eliminar", nil, tendero(t))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Empty(t, a.productos(t))
}
