package intlai

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultHealthCheckTimeout bounds each provider health probe during
// selection.
const DefaultHealthCheckTimeout = 2 * time.Second

// Translator is the translation collaborator consumed by the Service.
// Detection and translation are best-effort: Detect reports AutoDetect on
// failure and Translate returns the original text when every backend
// fails, so neither can fail the pipeline.
type Translator interface {
	Detect(ctx context.Context, text string) LanguageCode
	Translate(ctx context.Context, text string, target LanguageCode) string
	TranslateResponse(ctx context.Context, resp *AIResponse, target LanguageCode) *AIResponse
}

// Service orchestrates the end-to-end generation pipeline:
// detect, select, localize, translate-in, generate, translate-out.
//
// Concurrent GenerateText calls are independent; the active cultural
// context is an immutable value swapped atomically when the user changes
// language preference.
type Service struct {
	registry      *Registry
	translator    Translator
	localizer     *Localizer
	scorer        Scorer
	region        RegionCode
	userLang      LanguageCode
	nuances       []CulturalNuance
	healthTimeout time.Duration
	logger        zerolog.Logger

	cc atomic.Pointer[CulturalContext]
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithScorer replaces the default regional scorer.
func WithScorer(scorer Scorer) ServiceOption {
	return func(s *Service) { s.scorer = scorer }
}

// WithLocalizer replaces the default localizer.
func WithLocalizer(l *Localizer) ServiceOption {
	return func(s *Service) { s.localizer = l }
}

// WithRegion sets the user region.
func WithRegion(region RegionCode) ServiceOption {
	return func(s *Service) { s.region = region }
}

// WithUserLanguage sets the initial user language.
func WithUserLanguage(lang LanguageCode) ServiceOption {
	return func(s *Service) { s.userLang = lang }
}

// WithNuances sets the cultural nuances applied to every request context.
func WithNuances(nuances ...CulturalNuance) ServiceOption {
	return func(s *Service) { s.nuances = nuances }
}

// WithHealthCheckTimeout bounds each provider health probe.
func WithHealthCheckTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.healthTimeout = d
		}
	}
}

// NewService creates a Service over the given registry and translator.
func NewService(registry *Registry, translator Translator, opts ...ServiceOption) *Service {
	s := &Service{
		registry:      registry,
		translator:    translator,
		localizer:     NewLocalizer(),
		scorer:        NewRegionalScorer(),
		region:        RegionGlobal,
		nuances:       []CulturalNuance{NuanceFormalLanguage},
		userLang:      AutoDetect,
		healthTimeout: DefaultHealthCheckTimeout,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cc.Store(NewCulturalContext(s.userLang, s.region, s.nuances...))
	return s
}

// Context returns the active cultural context.
func (s *Service) Context() *CulturalContext {
	return s.cc.Load()
}

// UserLanguage returns the active user language preference.
func (s *Service) UserLanguage() LanguageCode {
	return s.cc.Load().Language
}

// SetUserLanguage switches the user language preference by building a new
// cultural context; in-flight requests keep the context they started with.
func (s *Service) SetUserLanguage(lang LanguageCode) {
	s.cc.Store(NewCulturalContext(lang, s.region, s.nuances...))
	s.logger.Debug().Str("language", lang.Code()).Msg("user language changed")
}

// AvailableProviders returns the providers serving the current region, in
// registration order.
func (s *Service) AvailableProviders() []*Provider {
	return s.registry.ByRegion(s.region)
}

// GenerateText runs the full pipeline for one prompt. target is the
// language the caller wants the response in; AutoDetect or the zero value
// means "whatever the user language resolves to". The returned error is
// either a *NoProviderError or a *ProviderCallError; translation and
// localization failures degrade to pass-through instead of failing.
func (s *Service) GenerateText(ctx context.Context, prompt string, target LanguageCode, query QueryType) (*AIResponse, error) {
	cc := s.cc.Load()
	if target == "" {
		target = cc.Language
	}
	if query == "" {
		query = QueryGeneralChat
	}

	requestID := uuid.NewString()
	logger := s.logger.With().Str("request_id", requestID).Logger()

	// Detect.
	detected := cc.Language
	if detected == AutoDetect {
		detected = s.translator.Detect(ctx, prompt)
		logger.Debug().Str("language", detected.Code()).Msg("detected prompt language")
	}

	// Select.
	provider, err := s.selectProvider(ctx, detected, query)
	if err != nil {
		logger.Warn().Err(err).Msg("provider selection failed")
		return nil, err
	}
	logger.Debug().Str("provider", string(provider.ID)).Msg("selected provider")

	// Localize.
	localized := s.localizer.Localize(prompt, provider, cc)

	// Translate-in.
	outbound := localized
	if !provider.SupportsLanguage(detected) {
		common := commonLanguage(provider, detected)
		if common != detected {
			outbound = s.translator.Translate(ctx, localized, common)
			logger.Debug().
				Str("from", detected.Code()).
				Str("to", common.Code()).
				Msg("translated prompt for provider")
		}
	}

	// Generate.
	start := time.Now()
	resp, err := provider.Generate(ctx, outbound, detected, cc)
	if err != nil {
		callErr := &ProviderCallError{Provider: provider.ID, Cause: err}
		logger.Warn().Err(callErr).Msg("generation failed")
		return nil, callErr
	}
	if resp.Latency == 0 {
		resp.Latency = time.Since(start)
	}
	resp = resp.WithMetadata("request_id", requestID)

	// Translate-out.
	if target != detected && target != AutoDetect {
		resp = s.translator.TranslateResponse(ctx, resp, target)
		logger.Debug().Str("to", target.Code()).Msg("translated response")
	}

	return resp, nil
}

// providerScore pairs a provider with its selection score.
type providerScore struct {
	provider *Provider
	score    QualityScore
}

// selectProvider filters the registry to providers that support the
// language and region and report StatusAvailable, then returns the
// highest-scoring survivor. Health probes run concurrently, each bounded
// by the health-check timeout; a probe that misses its deadline excludes
// the provider from this round only.
func (s *Service) selectProvider(ctx context.Context, lang LanguageCode, query QueryType) (*Provider, error) {
	var candidates []*Provider
	for _, p := range s.registry.Providers() {
		if p.SupportsLanguage(lang) && p.SupportsRegion(s.region) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, &NoProviderError{Language: lang, Region: s.region}
	}

	statuses := s.checkHealth(ctx, candidates)

	scored := make([]providerScore, 0, len(candidates))
	for i, p := range candidates {
		if statuses[i] != StatusAvailable {
			s.logger.Debug().
				Str("provider", string(p.ID)).
				Str("status", string(statuses[i])).
				Msg("provider excluded from selection round")
			continue
		}
		scored = append(scored, providerScore{provider: p, score: s.scorer.Score(p, lang, query)})
	}
	if len(scored) == 0 {
		return nil, &NoProviderError{Language: lang, Region: s.region}
	}

	// Stable sort keeps registration order as the tie-break.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score.Weighted() > scored[j].score.Weighted()
	})
	return scored[0].provider, nil
}

// checkHealth probes the candidates concurrently and returns their
// statuses in candidate order. A probe that does not settle within the
// timeout reports StatusUnknown without blocking the others.
func (s *Service) checkHealth(ctx context.Context, candidates []*Provider) []AccessStatus {
	type result struct {
		idx    int
		status AccessStatus
	}

	results := make(chan result, len(candidates))
	for i, p := range candidates {
		go func(idx int, p *Provider) {
			probeCtx, cancel := context.WithTimeout(ctx, s.healthTimeout)
			defer cancel()

			done := make(chan AccessStatus, 1)
			go func() { done <- p.CheckHealth(probeCtx) }()

			select {
			case status := <-done:
				results <- result{idx: idx, status: status}
			case <-probeCtx.Done():
				results <- result{idx: idx, status: StatusUnknown}
			}
		}(i, p)
	}

	statuses := make([]AccessStatus, len(candidates))
	for range candidates {
		r := <-results
		statuses[r.idx] = r.status
	}
	return statuses
}

// commonLanguage finds the best language shared by the provider and the
// request. Preference order: the detected language itself, English,
// Chinese (Simplified), then the provider's first declared language.
func commonLanguage(p *Provider, detected LanguageCode) LanguageCode {
	switch {
	case p.SupportsLanguage(detected):
		return detected
	case p.SupportsLanguage(English):
		return English
	case p.SupportsLanguage(ChineseSimplified):
		return ChineseSimplified
	}
	if len(p.Languages) > 0 {
		return p.Languages[0]
	}
	return English
}
