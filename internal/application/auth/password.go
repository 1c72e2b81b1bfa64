package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Esquemas de hash de contraseñas.
const (
	HashSHA256 = "sha256"
	HashBcrypt = "bcrypt"
)

// hashPassword genera el hash según el esquema. sha256 es hex sin sal (formato de los datos existentes).
func hashPassword(scheme, password string) (string, error) {
	if scheme == HashBcrypt {
		b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// verifyPassword acepta ambos esquemas: los hash bcrypt empiezan con "$2".
func verifyPassword(stored, password string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	sum := sha256.Sum256([]byte(password))
	provided := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(provided)) == 1
}
