package translate

import (
	"context"
	"errors"
	"time"

	"github.com/spiralgang/intlai"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns sensible defaults for retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry executes a function with exponential backoff retry.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		// Check context before each attempt
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return zero, err
		}

		// Don't sleep after the last attempt
		if attempt < cfg.MaxRetries {
			delay := cfg.BaseDelay * time.Duration(1<<attempt)
			if delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Retryable
	}

	// Context errors are not retryable
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return false
}

// RetryBackend wraps a Backend with retry logic for transient failures.
// Retrying happens within a single fallback slot: the pipeline still moves
// on to the next backend once the retries are exhausted.
type RetryBackend struct {
	backend Backend
	config  RetryConfig
}

// NewRetryBackend creates a backend wrapper with retry logic.
func NewRetryBackend(backend Backend, cfg RetryConfig) *RetryBackend {
	return &RetryBackend{
		backend: backend,
		config:  cfg,
	}
}

// Name identifies the wrapped backend.
func (b *RetryBackend) Name() string { return b.backend.Name() }

// SupportedLanguages returns the wrapped backend's language set.
func (b *RetryBackend) SupportedLanguages() []intlai.LanguageCode {
	return b.backend.SupportedLanguages()
}

// MaxTextLength returns the wrapped backend's input bound.
func (b *RetryBackend) MaxTextLength() int { return b.backend.MaxTextLength() }

// Translate implements Backend with retry logic.
func (b *RetryBackend) Translate(ctx context.Context, text string, from, to intlai.LanguageCode) (string, error) {
	return WithRetry(ctx, b.config, func() (string, error) {
		return b.backend.Translate(ctx, text, from, to)
	})
}

// Detect implements Backend with retry logic.
func (b *RetryBackend) Detect(ctx context.Context, text string) (intlai.LanguageCode, error) {
	return WithRetry(ctx, b.config, func() (intlai.LanguageCode, error) {
		return b.backend.Detect(ctx, text)
	})
}

// Verify RetryBackend implements Backend
var _ Backend = (*RetryBackend)(nil)
