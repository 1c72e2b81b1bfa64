package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// sufijoHex devuelve n bytes aleatorios en hex (2n caracteres).
func sufijoHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func nuevoProductoID(now time.Time) string {
	return fmt.Sprintf("prod_%d_%s", now.Unix(), sufijoHex(3))
}

func nuevoProveedorID(now time.Time) string {
	return fmt.Sprintf("prov_%d_%s", now.Unix(), sufijoHex(4))
}

func nuevoLocalID(propietario string, now time.Time) string {
	return fmt.Sprintf("local_%s_%d", propietario, now.Unix())
}

func nuevoNombreImagen(ext string, now time.Time) string {
	return fmt.Sprintf("producto_%d_%s.%s", now.Unix(), sufijoHex(4), ext)
}
