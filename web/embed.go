// Package web empaqueta las vistas HTML y los archivos estáticos.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates static
var archivos embed.FS

// Views devuelve el motor de plantillas sobre las vistas embebidas.
func Views() *html.Engine {
	sub, err := fs.Sub(archivos, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// Static devuelve los archivos de static/ para servirlos en /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(archivos, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
