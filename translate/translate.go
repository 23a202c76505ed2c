// Package translate implements the multi-backend translation subsystem:
// language detection, cache-first translation with ordered backend
// fallback, and the degrade-to-original policy that returns untranslated
// text rather than failing when every backend is unavailable.
package translate

import (
	"context"
	"fmt"

	"github.com/spiralgang/intlai"
)

// Backend is one translation service. Backends are stateless aside from
// their fixed supported-language set and input-length bound.
type Backend interface {
	// Name identifies the backend for logging and error reporting.
	Name() string

	// SupportedLanguages returns the fixed set of target languages the
	// backend can translate into.
	SupportedLanguages() []intlai.LanguageCode

	// MaxTextLength returns the input-length bound in bytes. Zero means
	// unbounded. Exceeding the bound is a caller error, never silent
	// truncation.
	MaxTextLength() int

	// Translate translates text into the target language. Pass
	// intlai.AutoDetect as from when the source language is unknown.
	Translate(ctx context.Context, text string, from, to intlai.LanguageCode) (string, error)

	// Detect identifies the language of the text.
	Detect(ctx context.Context, text string) (intlai.LanguageCode, error)
}

// Detector identifies the language of a text without translating it.
type Detector interface {
	Detect(ctx context.Context, text string) (intlai.LanguageCode, error)
}

// BackendError indicates a translation backend failure.
type BackendError struct {
	Backend   string
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translation backend %s: %s: %v", e.Backend, e.Message, e.Cause)
	}
	return fmt.Sprintf("translation backend %s: %s", e.Backend, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// TextTooLongError indicates input exceeding a backend's length bound.
type TextTooLongError struct {
	Backend string
	Length  int
	Max     int
}

func (e *TextTooLongError) Error() string {
	return fmt.Sprintf("text of %d bytes exceeds %s limit of %d", e.Length, e.Backend, e.Max)
}

func supportsTarget(b Backend, target intlai.LanguageCode) bool {
	for _, l := range b.SupportedLanguages() {
		if l == target {
			return true
		}
	}
	return false
}
