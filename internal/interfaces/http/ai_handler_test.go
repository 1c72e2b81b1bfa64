package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fiapp/internal/application/asistente"
)

// MensajeAyuda con los saltos de línea y comillas escapados para JSON.
var ayudaJSON = strings.NewReplacer("\n", `\n`, `"`, `\"`).Replace(asistente.MensajeAyuda)

func TestAIChat(t *testing.T) {
	a := newTestApp(t)
	cases := []struct {
		name   string
		body   string
		status int
		resp   string
	}{
		{"aritmética", `{"message":"12.5*3+2"}`, http.StatusOK, `{"reply":"El resultado es 39.5"}`},
		{"cantidad por precio", `{"message":"3 unidades a 12.50"}`, http.StatusOK, `{"reply":"3 × 12.5 = 37.50 (total)"}`},
		{"vacío", `{"message":"   "}`, http.StatusBadRequest, `{"error":"Mensaje vacío"}`},
		{"JSON inválido", `no-json`, http.StatusBadRequest, `{"error":"Mensaje vacío"}`},
		{"demasiado largo", `{"message":"` + strings.Repeat("(", 2001) + `"}`, http.StatusRequestEntityTooLarge, `{"error":"Mensaje demasiado largo"}`},
		{"paréntesis profundos", `{"message":"` + strings.Repeat("(", 500) + "1" + strings.Repeat(")", 500) + `"}`, http.StatusOK, `{"reply":"` + ayudaJSON + `"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := a.sendJSON(t, http.MethodPost, "/api/ai_chat", tc.body, tendero(t))
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.JSONEq(t, tc.resp, body(t, resp))
		})
	}
}

func TestAIChat_SoloTendero(t *testing.T) {
	a := newTestApp(t)
	resp := a.sendJSON(t, http.MethodPost, "/api/ai_chat", `{"message":"1+1"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
