package insight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var ErrNotConfigured = errors.New("OpenRouter API key not configured")

// Provider is the external completion boundary; the generator only sees
// this interface so tests can substitute a fake.
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// =======================
// OpenRouter provider
// =======================
// OpenRouter speaks the OpenAI chat-completions API on its own base URL and
// wants HTTP-Referer / X-Title attribution headers on every request.

type OpenRouterProvider struct {
	client *openai.Client
}

type attributionTransport struct {
	referer string
	base    http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", t.referer)
	req.Header.Set("X-Title", "Relationnel App")
	return t.base.RoundTrip(req)
}

// NewOpenRouterProvider builds the client. With an empty API key the
// provider stays unconfigured and every Complete call reports
// ErrNotConfigured instead of reaching the network.
func NewOpenRouterProvider(apiKey, baseURL, appURL string) *OpenRouterProvider {
	if strings.TrimSpace(apiKey) == "" {
		return &OpenRouterProvider{}
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{
		Transport: &attributionTransport{referer: appURL, base: http.DefaultTransport},
	}
	return &OpenRouterProvider{client: openai.NewClientWithConfig(cfg)}
}

// Complete performs exactly one chat-completion attempt; no retry, no
// backoff. The caller's context carries any deadline.
func (p *OpenRouterProvider) Complete(ctx context.Context, system, user string) (string, error) {
	if p.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: ModelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errors.New("openrouter completion: empty output")
	}
	return resp.Choices[0].Message.Content, nil
}
