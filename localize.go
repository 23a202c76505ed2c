package intlai

// OptimizerTag names a prompt-optimization profile. Providers bind to a
// tag at registration; the localizer never inspects provider identifiers
// at call time.
type OptimizerTag string

const (
	OptimizerChinese     OptimizerTag = "chinese"
	OptimizerECommerce   OptimizerTag = "ecommerce"
	OptimizerGaming      OptimizerTag = "gaming"
	OptimizerLongContext OptimizerTag = "long_context"
	OptimizerRussian     OptimizerTag = "russian"
	OptimizerKorean      OptimizerTag = "korean"
	OptimizerJapanese    OptimizerTag = "japanese"
)

// domainNuanceOrder fixes the application order of domain-framing rewrites.
var domainNuanceOrder = []CulturalNuance{
	NuanceBusinessContext,
	NuanceGamingContext,
	NuanceEducationalContext,
	NuanceLegalCompliance,
}

// Optimizer rewrites prompts for one cultural profile. Rewrites compose by
// sequential application: register prefix, then domain framing, then the
// compliance suffix. The zero value passes prompts through unchanged.
type Optimizer struct {
	// FormalPrefix and CasualPrefix set the register; at most one
	// applies, formal winning when both nuances are present.
	FormalPrefix string
	CasualPrefix string

	// DomainPrefixes frame the prompt for a domain nuance.
	DomainPrefixes map[CulturalNuance]string

	// AlwaysPrefix applies regardless of nuances.
	AlwaysPrefix string

	// ComplianceSuffix is appended when content filtering is requested.
	ComplianceSuffix string
}

// Apply rewrites the prompt for the context. Empty prompts pass through;
// non-empty prompts never come back empty.
func (o Optimizer) Apply(prompt string, cc *CulturalContext) string {
	if prompt == "" || cc == nil {
		return prompt
	}

	out := prompt
	switch {
	case cc.Nuances.Has(NuanceFormalLanguage) && o.FormalPrefix != "":
		out = o.FormalPrefix + out
	case cc.Nuances.Has(NuanceCasualLanguage) && o.CasualPrefix != "":
		out = o.CasualPrefix + out
	}

	for _, n := range domainNuanceOrder {
		if !cc.Nuances.Has(n) {
			continue
		}
		if prefix := o.DomainPrefixes[n]; prefix != "" {
			out = prefix + out
		}
	}

	if o.AlwaysPrefix != "" {
		out = o.AlwaysPrefix + out
	}
	if cc.Nuances.Has(NuanceContentFiltering) && o.ComplianceSuffix != "" {
		out += o.ComplianceSuffix
	}
	return out
}

// Localizer resolves a provider's optimizer tag to an optimizer and
// applies it. Providers without a bound optimizer pass prompts through;
// that is the default case, not an error.
type Localizer struct {
	optimizers map[OptimizerTag]Optimizer
}

// NewLocalizer creates a localizer with the built-in optimizer profiles.
func NewLocalizer() *Localizer {
	return &Localizer{
		optimizers: map[OptimizerTag]Optimizer{
			OptimizerChinese: {
				FormalPrefix: "请以正式的语言风格回答：",
				DomainPrefixes: map[CulturalNuance]string{
					NuanceBusinessContext: "从商业角度分析：",
				},
				ComplianceSuffix: "（请确保回答符合相关法规要求）",
			},
			OptimizerECommerce: {
				DomainPrefixes: map[CulturalNuance]string{
					NuanceBusinessContext: "从电商业务角度：",
				},
			},
			OptimizerGaming: {
				DomainPrefixes: map[CulturalNuance]string{
					NuanceGamingContext: "游戏场景下：",
				},
			},
			OptimizerLongContext: {
				AlwaysPrefix: "请提供详细的分析和解释：",
			},
			OptimizerRussian: {
				FormalPrefix: "Ответьте в формальном стиле: ",
			},
			OptimizerKorean: {
				FormalPrefix: "정중한 어조로 답변해 주세요: ",
			},
			OptimizerJapanese: {
				FormalPrefix: "丁寧語でお答えください：",
			},
		},
	}
}

// Register binds a tag to an optimizer, replacing any existing binding.
func (l *Localizer) Register(tag OptimizerTag, o Optimizer) {
	l.optimizers[tag] = o
}

// Localize rewrites the prompt for the provider's cultural profile.
func (l *Localizer) Localize(prompt string, p *Provider, cc *CulturalContext) string {
	if p == nil || p.OptimizerTag == "" {
		return prompt
	}
	o, ok := l.optimizers[p.OptimizerTag]
	if !ok {
		return prompt
	}
	return o.Apply(prompt, cc)
}
