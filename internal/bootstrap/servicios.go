package bootstrap

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jhoicas/fiapp/internal/application/ports"
	"github.com/jhoicas/fiapp/internal/infrastructure/ai"
	"github.com/jhoicas/fiapp/internal/infrastructure/storage"
	"github.com/jhoicas/fiapp/pkg/config"
	"github.com/jhoicas/fiapp/pkg/logger"
)

// Chat devuelve el proveedor de IA configurado, o nil si no hay API key.
func Chat(ctx context.Context, cfg config.AIConfig, log *logger.Logger) (ports.ChatService, error) {
	if !cfg.Enabled() {
		log.Info().Msg("asistente sin proveedor externo, solo motor local")
		return nil, nil
	}
	switch cfg.Provider {
	case "gemini":
		svc, err := ai.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "")
		if err != nil {
			return nil, fmt.Errorf("cliente gemini: %w", err)
		}
		log.Info().Str("modelo", cfg.GeminiModel).Msg("asistente con Gemini")
		return svc, nil
	case "groq", "":
		log.Info().Str("modelo", cfg.GroqModel).Msg("asistente con Groq")
		return ai.NewGroqService(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqURL), nil
	default:
		return nil, fmt.Errorf("AI_PROVIDER desconocido %q", cfg.Provider)
	}
}

// Imagenes devuelve el almacenamiento de imágenes y el origen extra para img-src (vacío en disco).
func Imagenes(ctx context.Context, cfg config.UploadsConfig) (ports.ImageStorage, string, error) {
	if cfg.Backend != config.UploadsS3 {
		return storage.NewDiskStorage(cfg.Dir, cfg.PublicPrefix), "", nil
	}
	s3, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		return nil, "", fmt.Errorf("cliente S3: %w", err)
	}
	return s3, origen(s3.PublicURL()), nil
}

func origen(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
