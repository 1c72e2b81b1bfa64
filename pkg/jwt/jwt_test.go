package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/fiapp/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "fiapp-test"
)

func TestGenerateAndParse_ConservaSesion(t *testing.T) {
	in := pkgjwt.Sesion{UserID: "ana", Email: "ana@example.com", TipoUsuario: "tendero"}
	tok, err := pkgjwt.Generate(testSecret, in, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	out, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestGenerate_SinRolSigueSiendoValido(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Sesion{UserID: "ana", Email: "ana@example.com"}, testIssuer, 60)
	require.NoError(t, err)

	out, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Empty(t, out.TipoUsuario)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Sesion{UserID: "ana"}, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Sesion{UserID: "ana"}, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Sesion{UserID: "ana"}, testIssuer, 60)
	assert.Error(t, err)
}
