package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiapp/internal/infrastructure/storage"
	"github.com/jhoicas/fiapp/pkg/config"
)

func TestDiskStorage_Guardar(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewDiskStorage(dir, "/static/productos/")

	url, err := s.Guardar(context.Background(), "producto_1_abcd.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "/static/productos/producto_1_abcd.png", url)

	b, err := os.ReadFile(filepath.Join(dir, "productos", "producto_1_abcd.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(b))
}

func TestDiskStorage_RechazaRutas(t *testing.T) {
	s := storage.NewDiskStorage(t.TempDir(), "/static/productos")
	for _, n := range []string{"", "../x.png", "a/b.png", `a\b.png`, ".env"} {
		_, err := s.Guardar(context.Background(), n, "", []byte("x"))
		assert.Error(t, err, n)
	}
}

func TestNewS3Storage_RequiereBucket(t *testing.T) {
	_, err := storage.NewS3Storage(context.Background(), config.S3Config{})
	assert.Error(t, err)
}

func TestS3Storage_Guardar(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		path   string
		ctype  string
		body   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		method, path, ctype = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := storage.NewS3Storage(context.Background(), config.S3Config{
		Endpoint:     srv.URL,
		Region:       "us-east-1",
		Bucket:       "fiapp",
		AccessKey:    "ak",
		SecretKey:    "sk",
		UsePathStyle: true,
	})
	require.NoError(t, err)

	url, err := s.Guardar(context.Background(), "producto_1_abcd.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/fiapp/productos/producto_1_abcd.png", url)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/fiapp/productos/producto_1_abcd.png", path)
	assert.Equal(t, "image/png", ctype)
	assert.Contains(t, string(body), "png-bytes")
}

func TestS3Storage_URLPublicaConfigurada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := storage.NewS3Storage(context.Background(), config.S3Config{
		Endpoint: srv.URL, Bucket: "fiapp", AccessKey: "ak", SecretKey: "sk",
		UsePathStyle: true, PublicURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)

	url, err := s.Guardar(context.Background(), "producto_2_ff.jpg", "image/jpeg", []byte("jpg"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/productos/producto_2_ff.jpg", url)
}
