package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spiralgang/intlai"
)

// GeneratorConfig configures an OpenAI-compatible generation function.
type GeneratorConfig struct {
	APIKey            string  // API key for the completions endpoint
	BaseURL           string  // Vendor completions base URL
	Model             string  // Model name sent with each request
	Temperature       float32 // Sampling temperature (default: 0.7)
	MaxTokens         int     // Response length bound (default: 1024)
	RequestsPerMinute int     // Client-side pacing; 0 disables it
}

// NewOpenAICompatGenerator builds a generation function speaking the
// OpenAI chat-completions dialect, which the catalog vendors all expose.
// The returned function resolves every failure to an error value.
func NewOpenAICompatGenerator(id intlai.ProviderID, cfg GeneratorConfig) intlai.GenerateFunc {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	client := openai.NewClientWithConfig(clientCfg)

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	var limiter *RateLimiter
	if cfg.RequestsPerMinute > 0 {
		limiter = NewRateLimiter(cfg.RequestsPerMinute)
	}

	return func(ctx context.Context, prompt string, lang intlai.LanguageCode, cc *intlai.CulturalContext) (*intlai.AIResponse, error) {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("no API key configured for %s", id)
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
			}
		}

		start := time.Now()
		resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("completion request: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("empty completion response")
		}

		return &intlai.AIResponse{
			Content:  resp.Choices[0].Message.Content,
			Provider: id,
			Language: lang,
			Usage: intlai.TokenUsage{
				PromptTokens:     resp.Usage.PromptTokens,
				CompletionTokens: resp.Usage.CompletionTokens,
				TotalTokens:      resp.Usage.TotalTokens,
			},
			Latency:  time.Since(start),
			Metadata: map[string]string{"model": model},
		}, nil
	}
}
