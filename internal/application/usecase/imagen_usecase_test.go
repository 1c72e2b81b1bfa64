package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain"
)

type fakeStorage struct {
	nombres []string
}

func (s *fakeStorage) Guardar(_ context.Context, nombre, _ string, _ []byte) (string, error) {
	s.nombres = append(s.nombres, nombre)
	return "/static/productos/" + nombre, nil
}

// pngMinimo es la firma PNG más un relleno suficiente para la detección de tipo.
var pngMinimo = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

func TestImagen_AceptaPNG(t *testing.T) {
	st := &fakeStorage{}
	uc := usecase.NewImagenUseCase(st, 0)

	url, err := uc.Guardar(context.Background(), dto.ImagenUpload{Filename: "x.PNG", Data: pngMinimo})
	require.NoError(t, err)
	assert.Regexp(t, `^/static/productos/producto_\d+_[0-9a-f]{8}\.png$`, url)
}

func TestImagen_RechazaExtension(t *testing.T) {
	st := &fakeStorage{}
	uc := usecase.NewImagenUseCase(st, 0)

	_, err := uc.Guardar(context.Background(), dto.ImagenUpload{Filename: "x.exe", Data: pngMinimo})
	assert.ErrorIs(t, err, domain.ErrImagenInvalida)
	assert.Empty(t, st.nombres)
}

func TestImagen_RechazaTamanoYContenido(t *testing.T) {
	uc := usecase.NewImagenUseCase(&fakeStorage{}, 16)

	_, err := uc.Guardar(context.Background(), dto.ImagenUpload{Filename: "x.png", Data: pngMinimo})
	assert.ErrorIs(t, err, domain.ErrImagenInvalida, "supera el máximo")

	uc = usecase.NewImagenUseCase(&fakeStorage{}, 0)
	_, err = uc.Guardar(context.Background(), dto.ImagenUpload{Filename: "x.png", Data: []byte("texto plano")})
	assert.ErrorIs(t, err, domain.ErrImagenInvalida, "no es una imagen")
}

func TestExtensionPermitida(t *testing.T) {
	ext, ok := usecase.ExtensionPermitida("foto.JPEG")
	assert.True(t, ok)
	assert.Equal(t, "jpeg", ext)
	_, ok = usecase.ExtensionPermitida("sin_extension")
	assert.False(t, ok)
}
