package intlai

import (
	"context"
	"sort"
	"time"
)

// AccessStatus describes the health of a provider or endpoint.
type AccessStatus string

const (
	StatusAvailable     AccessStatus = "available"
	StatusRateLimited   AccessStatus = "rate_limited"
	StatusQuotaExceeded AccessStatus = "quota_exceeded"
	StatusBlocked       AccessStatus = "blocked"
	StatusError         AccessStatus = "error"
	StatusUnknown       AccessStatus = "unknown"
)

// ProviderID uniquely identifies a provider instance.
type ProviderID string

// Endpoint is one API endpoint of a provider. Lower priority values are
// preferred.
type Endpoint struct {
	URL      string
	Region   RegionCode
	Priority int
	Health   AccessStatus
}

// QuotaInfo exposes a provider's quota limits and usage. The values are
// informational; enforcement belongs to the vendor client.
type QuotaInfo struct {
	DailyLimit        int64
	MonthlyLimit      int64
	CurrentUsage      int64
	ResetAt           time.Time
	RequestsPerMinute int
}

// TokenUsage reports token consumption for one generation call.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// AIResponse is the result of one generation call. Responses are immutable
// once constructed; a translation step produces a new response rather than
// mutating in place.
type AIResponse struct {
	Content  string
	Provider ProviderID
	Language LanguageCode
	Usage    TokenUsage
	Latency  time.Duration
	Metadata map[string]string
}

// WithMetadata returns a copy of the response with one metadata entry added.
func (r *AIResponse) WithMetadata(key, value string) *AIResponse {
	out := *r
	out.Metadata = make(map[string]string, len(r.Metadata)+1)
	for k, v := range r.Metadata {
		out.Metadata[k] = v
	}
	out.Metadata[key] = value
	return &out
}

// GenerateFunc calls a provider's text-generation backend. It must resolve
// every failure path to an error value rather than panicking.
type GenerateFunc func(ctx context.Context, prompt string, lang LanguageCode, cc *CulturalContext) (*AIResponse, error)

// HealthFunc probes a provider's health. Implementations should honor the
// context deadline and report StatusUnknown when the state cannot be
// determined.
type HealthFunc func(ctx context.Context) AccessStatus

// Provider describes one AI text-generation backend as a data-driven
// capability descriptor: fixed metadata plus a generation function. New
// vendors are configuration, not new types.
type Provider struct {
	ID          ProviderID
	Name        string
	Description string
	Languages   []LanguageCode
	Regions     []RegionCode
	Endpoints   []Endpoint
	Quota       QuotaInfo

	// OptimizerTag binds the provider to a prompt optimizer at
	// registration time. Empty means prompts pass through unchanged.
	OptimizerTag OptimizerTag

	// GenerateFunc performs the vendor call. Required.
	GenerateFunc GenerateFunc

	// HealthFunc probes the vendor. Providers without a probe are
	// assumed reachable.
	HealthFunc HealthFunc
}

// SupportsLanguage reports whether the language is in the provider's
// declared supported set.
func (p *Provider) SupportsLanguage(lang LanguageCode) bool {
	for _, l := range p.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// SupportsRegion reports whether the provider serves the region.
// RegionGlobal acts as a wildcard on both sides: a provider declaring
// RegionGlobal serves every region, and every provider serves requests
// scoped to RegionGlobal.
func (p *Provider) SupportsRegion(region RegionCode) bool {
	if region == RegionGlobal {
		return true
	}
	for _, r := range p.Regions {
		if r == region || r == RegionGlobal {
			return true
		}
	}
	return false
}

// CheckHealth probes the provider. A nil HealthFunc reports
// StatusAvailable; a probe that panics reports StatusUnknown.
func (p *Provider) CheckHealth(ctx context.Context) (status AccessStatus) {
	if p.HealthFunc == nil {
		return StatusAvailable
	}
	defer func() {
		if recover() != nil {
			status = StatusUnknown
		}
	}()
	return p.HealthFunc(ctx)
}

// Generate invokes the provider's generation function.
func (p *Provider) Generate(ctx context.Context, prompt string, lang LanguageCode, cc *CulturalContext) (*AIResponse, error) {
	if p.GenerateFunc == nil {
		return nil, &ProviderCallError{Provider: p.ID, Cause: errNoGenerateFunc}
	}
	return p.GenerateFunc(ctx, prompt, lang, cc)
}

// OptimalEndpoint returns the healthy endpoint with the lowest priority
// among those scoped to the region or to RegionGlobal. The second return
// is false when no such endpoint exists.
func (p *Provider) OptimalEndpoint(region RegionCode) (Endpoint, bool) {
	matched := make([]Endpoint, 0, len(p.Endpoints))
	for _, e := range p.Endpoints {
		if e.Region == region || e.Region == RegionGlobal {
			matched = append(matched, e)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority < matched[j].Priority
	})

	for _, e := range matched {
		if e.Health == StatusAvailable {
			return e, true
		}
	}
	return Endpoint{}, false
}

// QuotaStatus returns the provider's quota information.
func (p *Provider) QuotaStatus() QuotaInfo {
	return p.Quota
}
