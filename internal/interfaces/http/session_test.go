package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireTipo_RedirigeALogin(t *testing.T) {
	a := newTestApp(t)

	cases := []struct {
		name   string
		path   string
		cookie *http.Cookie
	}{
		{"sin sesión", "/tendero/locales", nil},
		{"cliente en ruta de tendero", "/tendero/locales", cookie(t, "luis", "luis@example.com", "cliente")},
		{"tendero en ruta de cliente", "/cliente/deudas", tendero(t)},
		{"sin rol asignado", "/tendero/proveedores", cookie(t, "ana", "ana@example.com", "")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := a.get(t, tc.path, tc.cookie)
			assert.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, "/login", resp.Header.Get("Location"))
		})
	}
}

func TestRequireTipoAPI_401JSON(t *testing.T) {
	a := newTestApp(t)
	resp := a.get(t, "/api/proveedores", cookie(t, "luis", "luis@example.com", "cliente"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"No autorizado"}`, body(t, resp))
}

func TestCargar_CookieInvalidaSeLimpia(t *testing.T) {
	a := newTestApp(t)
	resp := a.get(t, "/tendero/locales", &http.Cookie{Name: testCookie, Value: "no-es-un-jwt"})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var limpiada bool
	for _, c := range resp.Cookies() {
		if c.Name == testCookie && c.Value == "" {
			limpiada = true
		}
	}
	assert.True(t, limpiada, "la cookie inválida debe borrarse")
}

func TestSecurityHeaders(t *testing.T) {
	a := newTestApp(t)
	resp := a.get(t, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	csp := resp.Header.Get("Content-Security-Policy")
	assert.Contains(t, csp, "script-src 'self'")
	assert.Contains(t, csp, "frame-src 'none'")
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}
