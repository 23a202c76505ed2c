package translate

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spiralgang/intlai"
)

// DefaultTTL is the default cache lifetime for translations.
const DefaultTTL = time.Hour

// Cache is the caching collaborator consumed by the pipeline.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration) error
}

// Pipeline translates text through an ordered list of backends with a
// cache in front. The first backend that supports the target language and
// returns a result wins; when every backend fails, the original text is
// returned unchanged. That degrade-to-original policy trades fidelity for
// availability and must be preserved.
type Pipeline struct {
	backends []Backend
	cache    Cache
	ttl      time.Duration
	detector Detector
	logger   zerolog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithCache sets the translation cache.
func WithCache(c Cache) PipelineOption {
	return func(p *Pipeline) { p.cache = c }
}

// WithTTL sets the cache lifetime for new entries.
func WithTTL(ttl time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if ttl > 0 {
			p.ttl = ttl
		}
	}
}

// WithDetector overrides language detection. Without it, detection
// delegates to the primary (first) backend.
func WithDetector(d Detector) PipelineOption {
	return func(p *Pipeline) { p.detector = d }
}

// WithPipelineLogger sets the structured logger.
func WithPipelineLogger(logger zerolog.Logger) PipelineOption {
	return func(p *Pipeline) { p.logger = logger }
}

// NewPipeline creates a pipeline over the given backends. Backend order is
// the fallback priority order.
func NewPipeline(backends []Backend, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		backends: backends,
		ttl:      DefaultTTL,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Detect identifies the language of the text. Detection is best-effort:
// any failure reports intlai.AutoDetect rather than an error, so it can
// never block the pipeline.
func (p *Pipeline) Detect(ctx context.Context, text string) intlai.LanguageCode {
	if text == "" {
		return intlai.AutoDetect
	}

	det := p.detector
	if det == nil {
		if len(p.backends) == 0 {
			return intlai.AutoDetect
		}
		det = p.backends[0]
	}

	lang, err := det.Detect(ctx, text)
	if err != nil {
		p.logger.Debug().Err(err).Msg("language detection failed")
		return intlai.AutoDetect
	}
	return lang
}

// Translate translates text into the target language, cache-first. Every
// backend failure is absorbed; when all backends fail the original text
// comes back unchanged.
func (p *Pipeline) Translate(ctx context.Context, text string, target intlai.LanguageCode) string {
	if text == "" || target == intlai.AutoDetect {
		return text
	}

	key := intlai.TranslationKey(text, target)
	if p.cache != nil {
		if cached, ok := p.cache.Get(key); ok {
			return cached
		}
	}

	for _, b := range p.backends {
		if !supportsTarget(b, target) {
			continue
		}

		translated, err := b.Translate(ctx, text, intlai.AutoDetect, target)
		if err != nil {
			p.logger.Warn().
				Err(err).
				Str("backend", b.Name()).
				Str("target", target.Code()).
				Msg("translation backend failed, trying next")
			continue
		}

		if p.cache != nil {
			_ = p.cache.Set(key, translated, p.ttl) // Ignore cache set errors
		}
		return translated
	}

	p.logger.Warn().
		Str("target", target.Code()).
		Msg("all translation backends failed, returning original text")
	return text
}

// TranslateResponse translates a provider response into the target
// language. It is a no-op when the response already matches the target or
// the target is AutoDetect; otherwise a new response is returned with the
// content translated and the language updated, all other fields unchanged.
func (p *Pipeline) TranslateResponse(ctx context.Context, resp *intlai.AIResponse, target intlai.LanguageCode) *intlai.AIResponse {
	if resp == nil {
		return nil
	}
	if resp.Language == target || target == intlai.AutoDetect {
		return resp
	}

	out := *resp
	out.Content = p.Translate(ctx, resp.Content, target)
	out.Language = target
	return &out
}

// Verify Pipeline satisfies the orchestrator's translator contract
var _ intlai.Translator = (*Pipeline)(nil)
