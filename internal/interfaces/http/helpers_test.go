package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiapp/internal/application/asistente"
	"github.com/jhoicas/fiapp/internal/application/auth"
	"github.com/jhoicas/fiapp/internal/application/reportes"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/infrastructure/pdf"
	"github.com/jhoicas/fiapp/internal/infrastructure/storage"
	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
	"github.com/jhoicas/fiapp/internal/infrastructure/treedb"
	apphttp "github.com/jhoicas/fiapp/internal/interfaces/http"
	"github.com/jhoicas/fiapp/pkg/config"
	pkgjwt "github.com/jhoicas/fiapp/pkg/jwt"
	"github.com/jhoicas/fiapp/web"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testCookie = "fiapp_session"
	testIssuer = "fiapp-test"
)

type testApp struct {
	app      *fiber.App
	store    *tree.MemoryStore
	auth     *auth.AuthUseCase
	clientes *usecase.ClienteUseCase
	uploads  string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	store := tree.NewMemoryStore()
	usuarios := treedb.NewUsuarioRepository(store)
	localRepo := treedb.NewLocalRepository(store)

	authUC := auth.NewAuthUseCase(usuarios, "")
	localUC := usecase.NewLocalUseCase(localRepo)
	clienteUC := usecase.NewClienteUseCase(treedb.NewClienteRepository(store), localRepo, usuarios)
	uploads := t.TempDir()

	sesiones := apphttp.NewSesiones(config.SessionConfig{
		Secret: testSecret, Expiration: 60, Issuer: testIssuer, CookieName: testCookie,
	})
	app := fiber.New(fiber.Config{Views: web.Views(), ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.SecurityHeaders())
	app.Use(sesiones.Cargar())
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         authUC,
		LocalUC:        localUC,
		ProductoUC:     usecase.NewProductoUseCase(treedb.NewProductoRepository(store)),
		ClienteUC:      clienteUC,
		ProveedorUC:    usecase.NewProveedorUseCase(treedb.NewProveedorRepository(store)),
		ImagenUC:       usecase.NewImagenUseCase(storage.NewDiskStorage(uploads, "/static/productos"), 0),
		EstadoCuentaUC: reportes.NewEstadoCuentaUseCase(localRepo, pdf.NewEstadoCuentaPDF()),
		Asistente:      asistente.NewAsistente(nil, localUC, 0, nil),
		Sesiones:       sesiones,
	})
	return &testApp{app: app, store: store, auth: authUC, clientes: clienteUC, uploads: uploads}
}

// cookie devuelve una cookie de sesión firmada con el rol indicado.
func cookie(t *testing.T, userID, email, tipo string) *http.Cookie {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Sesion{UserID: userID, Email: email, TipoUsuario: tipo}, testIssuer, 60)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: tok}
}

func tendero(t *testing.T) *http.Cookie { return cookie(t, "ana", "ana@example.com", "tendero") }

func (a *testApp) do(t *testing.T, req *http.Request, c *http.Cookie) *http.Response {
	t.Helper()
	if c != nil {
		req.AddCookie(c)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (a *testApp) get(t *testing.T, path string, c *http.Cookie) *http.Response {
	return a.do(t, httptest.NewRequest(http.MethodGet, path, nil), c)
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values, c *http.Cookie) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(t, req, c)
}

func (a *testApp) sendJSON(t *testing.T, method, path, body string, c *http.Cookie) *http.Response {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return a.do(t, req, c)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// sembrarLocal crea locales/l1 de "ana" con el cliente "luis" debiendo deuda.
func (a *testApp) sembrarLocal(t *testing.T, deuda float64) {
	t.Helper()
	require.NoError(t, a.store.Set(context.Background(), "locales/l1", map[string]any{
		"nombre":         "Tienda Ana",
		"propietario_id": "ana",
		"clientes": map[string]any{
			"luis": map[string]any{"email": "luis@example.com", "nombre": "Luis", "deuda": deuda},
		},
	}))
}

func (a *testApp) deuda(t *testing.T) any {
	t.Helper()
	v, err := a.store.Get(context.Background(), "locales/l1/clientes/luis/deuda")
	require.NoError(t, err)
	return v
}
