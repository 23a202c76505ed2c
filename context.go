package intlai

// CulturalNuance tags a stylistic or regulatory preference attached to a
// request context. Multiple nuances may coexist on one context.
type CulturalNuance string

const (
	NuanceFormalLanguage       CulturalNuance = "formal_language"
	NuanceCasualLanguage       CulturalNuance = "casual_language"
	NuanceBusinessContext      CulturalNuance = "business_context"
	NuanceEducationalContext   CulturalNuance = "educational_context"
	NuanceEntertainmentContext CulturalNuance = "entertainment_context"
	NuanceGamingContext        CulturalNuance = "gaming_context"
	NuanceSocialMediaContext   CulturalNuance = "social_media_context"
	NuanceTechnicalContext     CulturalNuance = "technical_context"
	NuanceLegalCompliance      CulturalNuance = "legal_compliance"
	NuanceContentFiltering     CulturalNuance = "content_filtering"
)

// NuanceSet is a set of cultural nuances.
type NuanceSet map[CulturalNuance]struct{}

// NewNuanceSet builds a set from the given nuances.
func NewNuanceSet(nuances ...CulturalNuance) NuanceSet {
	s := make(NuanceSet, len(nuances))
	for _, n := range nuances {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether the nuance is present.
func (s NuanceSet) Has(n CulturalNuance) bool {
	_, ok := s[n]
	return ok
}

// QueryType classifies a generation request for routing purposes.
type QueryType string

const (
	QueryGeneralChat        QueryType = "general_chat"
	QueryCodeGeneration     QueryType = "code_generation"
	QueryTranslation        QueryType = "translation"
	QueryCreativeWriting    QueryType = "creative_writing"
	QueryTechnicalAnalysis  QueryType = "technical_analysis"
	QueryBusinessQuery      QueryType = "business_query"
	QueryEducationalContent QueryType = "educational_content"
	QueryGamingContent      QueryType = "gaming_content"
	QueryLegalQuery         QueryType = "legal_query"
)

var queryTypes = map[QueryType]struct{}{
	QueryGeneralChat:        {},
	QueryCodeGeneration:     {},
	QueryTranslation:        {},
	QueryCreativeWriting:    {},
	QueryTechnicalAnalysis:  {},
	QueryBusinessQuery:      {},
	QueryEducationalContent: {},
	QueryGamingContent:      {},
	QueryLegalQuery:         {},
}

// Valid reports whether the value is a known query type.
func (q QueryType) Valid() bool {
	_, ok := queryTypes[q]
	return ok
}

// CulturalContext bundles the language, region and stylistic preferences
// applied to a request. A context is immutable once built; preference
// changes create a new context rather than mutating a shared one.
type CulturalContext struct {
	Language           LanguageCode
	Region             RegionCode
	Nuances            NuanceSet
	PreferredProviders []ProviderID
}

// NewCulturalContext builds a context for the given language and region.
// The preferred-provider order is derived from the region.
func NewCulturalContext(lang LanguageCode, region RegionCode, nuances ...CulturalNuance) *CulturalContext {
	return &CulturalContext{
		Language:           lang,
		Region:             region,
		Nuances:            NewNuanceSet(nuances...),
		PreferredProviders: PreferredProvidersForRegion(region),
	}
}

var regionPreferredProviders = map[RegionCode][]ProviderID{
	RegionChina:  {"zhipu_chatglm", "baidu_ernie", "alibaba_qianwen"},
	RegionRussia: {"yandex_gpt", "cohere_ai"},
	RegionKorea:  {"naver_clova", "cohere_ai"},
	RegionJapan:  {"rinna", "cohere_ai"},
	RegionIsrael: {"ai21_jurassic", "cohere_ai"},
	RegionCanada: {"cohere_ai", "zhipu_chatglm"},
}

// PreferredProvidersForRegion returns the ordered provider preference list
// for a region. Regions without a specific list share a global default.
func PreferredProvidersForRegion(region RegionCode) []ProviderID {
	if ids, ok := regionPreferredProviders[region]; ok {
		out := make([]ProviderID, len(ids))
		copy(out, ids)
		return out
	}
	return []ProviderID{"zhipu_chatglm", "cohere_ai"}
}
