package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jhoicas/fiapp/internal/application/ports"
)

var _ ports.ChatService = (*GeminiService)(nil)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiService implementa ChatService con el SDK oficial google.golang.org/genai.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService crea el cliente. baseURL vacío usa el endpoint público (se sobreescribe en tests).
func NewGeminiService(ctx context.Context, apiKey, model, baseURL string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	return &GeminiService{client: client, model: model}, nil
}

// Completar genera una respuesta de texto para el prompt.
func (s *GeminiService) Completar(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](1),
		MaxOutputTokens: 1024,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: Gemini: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
