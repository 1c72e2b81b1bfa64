// Package treedb implementa los repositorios del dominio sobre cualquier TreeStore,
// con las rutas fijas del árbol (usuarios, locales, proveedores).
package treedb

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
)

const (
	raizUsuarios    = "usuarios"
	raizLocales     = "locales"
	raizProveedores = "proveedores"
)

// EmailKey es la clave del usuario: md5 hex del email en minúsculas.
func EmailKey(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

func usuarioPath(email string) string { return tree.Join(raizUsuarios, EmailKey(email)) }
func localPath(id string) string { return tree.Join(raizLocales, id) }
func productosPath(localID string) string {
	return tree.Join(raizLocales, localID, "productos")
}
func productoPath(localID, id string) string { return tree.Join(productosPath(localID), id) }
func clientesPath(localID string) string {
	return tree.Join(raizLocales, localID, "clientes")
}
func clientePath(localID, id string) string { return tree.Join(clientesPath(localID), id) }
func proveedorPath(id string) string { return tree.Join(raizProveedores, id) }

// hijos devuelve los hijos mapa de un nodo, ordenados por clave.
func hijos(v any) ([]string, map[string]map[string]any) {
	m, _ := v.(map[string]any)
	keys := make([]string, 0, len(m))
	out := make(map[string]map[string]any, len(m))
	for k, raw := range m {
		if child, ok := raw.(map[string]any); ok {
			keys = append(keys, k)
			out[k] = child
		}
	}
	sort.Strings(keys)
	return keys, out
}
