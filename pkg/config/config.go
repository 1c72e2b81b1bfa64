package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backends de almacenamiento del árbol de documentos.
const (
	StoreFirebase = "firebase"
	StoreLocal    = "local"
	StorePostgres = "postgres"
)

// Backends de almacenamiento de imágenes.
const (
	UploadsDisk = "disk"
	UploadsS3   = "s3"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente .env).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Store   StoreConfig
	DB      DBConfig
	Uploads UploadsConfig
	Auth    AuthConfig
	AI      AIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig configuración de la cookie de sesión firmada (JWT HS256).
type SessionConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
	CookieName string
	Secure     bool
}

// StoreConfig selecciona y configura el árbol de documentos.
// UseLocalAuth guarda el árbol de usuarios en el archivo local aunque el resto viva en el backend remoto.
type StoreConfig struct {
	Backend                 string
	UseLocalAuth            bool
	LocalPath               string
	FirebaseCredentialsPath string
	FirebaseDBURL           string
}

// DBConfig configuración de PostgreSQL (solo con STORE_BACKEND=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// UploadsConfig configuración de subida de imágenes de productos.
type UploadsConfig struct {
	Backend      string
	Dir          string // carpeta física servida bajo /static
	PublicPrefix string // prefijo público de las imágenes de productos
	MaxBytes     int64
	S3           S3Config
}

// S3Config bucket S3 compatible (AWS, MinIO, R2...).
type S3Config struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	PublicURL    string // base pública del bucket; vacío = endpoint/bucket
}

// AuthConfig esquema de hash para contraseñas nuevas ("sha256" o "bcrypt").
type AuthConfig struct {
	HashScheme string
}

// AIConfig proveedor opcional del asistente. Sin API key se usa solo el motor local.
type AIConfig struct {
	Provider     string // groq | gemini
	GroqAPIKey   string
	GroqModel    string
	GroqURL      string
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration
}

// Enabled indica si hay un proveedor externo configurado.
func (c AIConfig) Enabled() bool {
	switch c.Provider {
	case "gemini":
		return c.GeminiAPIKey != ""
	default:
		return c.GroqAPIKey != ""
	}
}

// Load lee la configuración desde .env (si existe) y variables de entorno.
// Las variables de entorno tienen prioridad sobre el archivo.
func Load() (*Config, error) {
	_ = godotenv.Load() // sin .env se usa solo el entorno

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "fiapp"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5000),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			Expiration: getInt(v, "SESSION_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "SESSION_ISSUER", "fiapp"),
			CookieName: getString(v, "SESSION_COOKIE", "fiapp_session"),
			Secure:     getBool(v, "SESSION_SECURE", false),
		},
		Store: StoreConfig{
			Backend:                 strings.ToLower(getString(v, "STORE_BACKEND", StoreFirebase)),
			UseLocalAuth:            getBool(v, "USE_LOCAL_AUTH", false),
			LocalPath:               getString(v, "LOCAL_STORE_PATH", "data/fiapp.json"),
			FirebaseCredentialsPath: getString(v, "FIREBASE_CREDENTIALS_PATH", ""),
			FirebaseDBURL:           getString(v, "FIREBASE_DB_URL", ""),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "fiapp"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Uploads: UploadsConfig{
			Backend:      strings.ToLower(getString(v, "UPLOADS_BACKEND", UploadsDisk)),
			Dir:          getString(v, "UPLOADS_DIR", "static"),
			PublicPrefix: "/static/productos",
			MaxBytes:     5 * 1024 * 1024,
			S3: S3Config{
				Endpoint:     getString(v, "S3_ENDPOINT", ""),
				Region:       getString(v, "S3_REGION", "us-east-1"),
				Bucket:       getString(v, "S3_BUCKET", ""),
				AccessKey:    getString(v, "S3_ACCESS_KEY", ""),
				SecretKey:    getString(v, "S3_SECRET_KEY", ""),
				UsePathStyle: getBool(v, "S3_USE_PATH_STYLE", true),
				PublicURL:    getString(v, "S3_PUBLIC_URL", ""),
			},
		},
		Auth: AuthConfig{
			HashScheme: strings.ToLower(getString(v, "AUTH_HASH", "sha256")),
		},
		AI: AIConfig{
			Provider:     strings.ToLower(getString(v, "AI_PROVIDER", "groq")),
			GroqAPIKey:   firstNonEmpty(getString(v, "QROQ_API_KEY", ""), getString(v, "GROQ_API_KEY", "")),
			GroqModel:    getString(v, "GROQ_MODEL", "openai/gpt-oss-20b"),
			GroqURL:      getString(v, "GROQ_URL", "https://api.groq.com/openai/v1/chat/completions"),
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout:      time.Duration(getInt(v, "AI_TIMEOUT_SECONDS", 15)) * time.Second,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		if c.App.Env != "development" {
			return fmt.Errorf("config: SESSION_SECRET es obligatorio fuera de development")
		}
		c.Session.Secret = "dev-secret-fiapp-2025"
	}
	switch c.Store.Backend {
	case StoreFirebase:
		if c.Store.FirebaseDBURL == "" {
			return fmt.Errorf("config: FIREBASE_DB_URL es obligatorio con STORE_BACKEND=firebase")
		}
	case StoreLocal, StorePostgres:
	default:
		return fmt.Errorf("config: STORE_BACKEND desconocido %q", c.Store.Backend)
	}
	switch c.Uploads.Backend {
	case UploadsDisk:
	case UploadsS3:
		if c.Uploads.S3.Bucket == "" {
			return fmt.Errorf("config: S3_BUCKET es obligatorio con UPLOADS_BACKEND=s3")
		}
	default:
		return fmt.Errorf("config: UPLOADS_BACKEND desconocido %q", c.Uploads.Backend)
	}
	if c.Auth.HashScheme != "sha256" && c.Auth.HashScheme != "bcrypt" {
		return fmt.Errorf("config: AUTH_HASH debe ser sha256 o bcrypt")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return n
}

// getBool acepta 1/true/yes sin distinguir mayúsculas.
func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
