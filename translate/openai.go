package translate

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spiralgang/intlai"
)

// DefaultMaxTextLength bounds inputs to the OpenAI-compatible backend.
const DefaultMaxTextLength = 8000

// OpenAIBackend translates through an OpenAI-compatible chat-completions
// API. Most regional vendors (Zhipu included) expose this surface, so a
// custom BaseURL is enough to point it at any of them.
type OpenAIBackend struct {
	client    *openai.Client
	model     string
	name      string
	languages []intlai.LanguageCode
	maxLen    int
}

// OpenAIConfig holds configuration for the OpenAI-compatible backend.
type OpenAIConfig struct {
	APIKey        string                // API key for the completions endpoint
	BaseURL       string                // Custom base URL (optional)
	Model         string                // Model to use (default: "gpt-4o-mini")
	Name          string                // Backend name for logs (default: "openai")
	Languages     []intlai.LanguageCode // Supported targets (default: the full language table)
	MaxTextLength int                   // Input bound in bytes (default: DefaultMaxTextLength)
}

// NewOpenAIBackend creates a new OpenAI-compatible translation backend.
func NewOpenAIBackend(cfg OpenAIConfig) *OpenAIBackend {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	name := cfg.Name
	if name == "" {
		name = "openai"
	}

	languages := cfg.Languages
	if len(languages) == 0 {
		for _, l := range intlai.Languages() {
			if l != intlai.AutoDetect {
				languages = append(languages, l)
			}
		}
	}

	maxLen := cfg.MaxTextLength
	if maxLen <= 0 {
		maxLen = DefaultMaxTextLength
	}

	return &OpenAIBackend{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		name:      name,
		languages: languages,
		maxLen:    maxLen,
	}
}

// Name identifies the backend.
func (b *OpenAIBackend) Name() string { return b.name }

// SupportedLanguages returns the backend's fixed target-language set.
func (b *OpenAIBackend) SupportedLanguages() []intlai.LanguageCode {
	out := make([]intlai.LanguageCode, len(b.languages))
	copy(out, b.languages)
	return out
}

// MaxTextLength returns the input bound in bytes.
func (b *OpenAIBackend) MaxTextLength() int { return b.maxLen }

// Translate translates text into the target language.
func (b *OpenAIBackend) Translate(ctx context.Context, text string, from, to intlai.LanguageCode) (string, error) {
	if len(text) > b.maxLen {
		return "", &TextTooLongError{Backend: b.name, Length: len(text), Max: b.maxLen}
	}

	system := "You are a professional translator. Translate the user's text into " +
		to.DisplayName() + " (" + to.Code() + "). " +
		"Preserve meaning, tone and formatting. Respond with only the translation, nothing else."
	if from != intlai.AutoDetect {
		system += " The source language is " + from.DisplayName() + "."
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", &BackendError{
			Backend:   b.name,
			Message:   "completion request failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}
	if len(resp.Choices) == 0 {
		return "", &BackendError{Backend: b.name, Message: "empty completion response", Retryable: true}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Detect asks the model to identify the language of the text.
func (b *OpenAIBackend) Detect(ctx context.Context, text string) (intlai.LanguageCode, error) {
	if len(text) > b.maxLen {
		return intlai.AutoDetect, &TextTooLongError{Backend: b.name, Length: len(text), Max: b.maxLen}
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "Identify the language of the user's text. " +
					"Respond with only its ISO 639-1 code (use \"zh-TW\" for Traditional Chinese).",
			},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return intlai.AutoDetect, &BackendError{
			Backend:   b.name,
			Message:   "detection request failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}
	if len(resp.Choices) == 0 {
		return intlai.AutoDetect, &BackendError{Backend: b.name, Message: "empty detection response", Retryable: true}
	}

	code := strings.TrimSpace(resp.Choices[0].Message.Content)
	lang := intlai.LanguageFromCode(code)
	if lang == intlai.AutoDetect {
		return intlai.AutoDetect, &BackendError{Backend: b.name, Message: "unrecognized language code " + code}
	}
	return lang, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporarily unavailable",
		"server error",
		"503",
		"429",
	}
	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIBackend implements Backend
var _ Backend = (*OpenAIBackend)(nil)
