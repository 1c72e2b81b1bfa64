package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/fiapp/internal/application/ports"
)

// Verificar en tiempo de compilación que GroqService implementa ChatService.
var _ ports.ChatService = (*GroqService)(nil)

const (
	DefaultGroqURL   = "https://api.groq.com/openai/v1/chat/completions"
	DefaultGroqModel = "openai/gpt-oss-20b"
)

// GroqService adaptador que implementa ChatService contra el endpoint de chat
// compatible con OpenAI de Groq.
type GroqService struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewGroqService construye el adaptador. model y url vacíos toman los valores por defecto.
func NewGroqService(apiKey, model, url string) *GroqService {
	if model == "" {
		model = DefaultGroqModel
	}
	if url == "" {
		url = DefaultGroqURL
	}
	return &GroqService{
		apiKey: apiKey,
		model:  model,
		url:    url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas de la API ────────────────────────────────────────────

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model               string        `json:"model"`
	Messages            []groqMessage `json:"messages"`
	Temperature         float64       `json:"temperature"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
	TopP                float64       `json:"top_p"`
	ReasoningEffort     string        `json:"reasoning_effort,omitempty"`
	Stream              bool          `json:"stream"`
}

type groqResponse struct {
	Choices []struct {
		Message groqMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Completar envía el prompt como único mensaje de usuario y devuelve el contenido de la primera opción.
func (s *GroqService) Completar(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: QROQ_API_KEY no configurado")
	}

	payload := groqRequest{
		Model:               s.model,
		Messages:            []groqMessage{{Role: "user", Content: prompt}},
		Temperature:         1,
		MaxCompletionTokens: 1024,
		TopP:                1,
		ReasoningEffort:     "medium",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	var out groqResponse
	if resp.StatusCode != http.StatusOK {
		if jsonErr := json.Unmarshal(rawBody, &out); jsonErr == nil && out.Error != nil {
			return "", fmt.Errorf("AI: Groq error %d: %s", resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("AI: Groq HTTP %d", resp.StatusCode)
	}
	if err := json.Unmarshal(rawBody, &out); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Groq: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
