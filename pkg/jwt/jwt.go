package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sesion son los datos de sesión que viajan en la cookie firmada.
// TipoUsuario vacío significa que el usuario aún no eligió rol.
type Sesion struct {
	UserID      string `json:"user"`
	Email       string `json:"email"`
	TipoUsuario string `json:"tipo_usuario"`
}

// Claims incluye los claims estándar JWT más los de la sesión.
type Claims struct {
	jwt.RegisteredClaims
	Sesion
}

// Generate firma un token HS256 con los datos de la sesión.
func Generate(secret string, s Sesion, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Sesion: s,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Sesion, error) {
	if secret == "" {
		return Sesion{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Sesion{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Sesion{}, fmt.Errorf("claims inválidos")
	}
	return claims.Sesion, nil
}
