package intlai

import (
	"strings"
	"testing"
)

func TestLocalizeNoOptimizerTag(t *testing.T) {
	l := NewLocalizer()
	p := testProvider("plain")
	cc := NewCulturalContext(ChineseSimplified, RegionChina, NuanceFormalLanguage)

	if got := l.Localize("你好", p, cc); got != "你好" {
		t.Errorf("untagged provider must pass through, got %q", got)
	}
}

func TestLocalizeUnknownTag(t *testing.T) {
	l := NewLocalizer()
	p := testProvider("odd")
	p.OptimizerTag = "does_not_exist"
	cc := NewCulturalContext(English, RegionGlobal, NuanceFormalLanguage)

	if got := l.Localize("hello", p, cc); got != "hello" {
		t.Errorf("unknown tag must pass through, got %q", got)
	}
}

func TestLocalizeChineseFormal(t *testing.T) {
	l := NewLocalizer()
	p := testProvider("baidu_ernie")
	p.OptimizerTag = OptimizerChinese
	cc := NewCulturalContext(ChineseSimplified, RegionChina, NuanceFormalLanguage)

	got := l.Localize("什么是人工智能", p, cc)
	want := "请以正式的语言风格回答：什么是人工智能"
	if got != want {
		t.Errorf("Localize = %q, want %q", got, want)
	}
}

func TestLocalizeNoNuances(t *testing.T) {
	l := NewLocalizer()
	p := testProvider("baidu_ernie")
	p.OptimizerTag = OptimizerChinese
	cc := NewCulturalContext(ChineseSimplified, RegionChina)

	if got := l.Localize("什么是人工智能", p, cc); got != "什么是人工智能" {
		t.Errorf("prompt without nuances must pass through, got %q", got)
	}
}

func TestLocalizeComposition(t *testing.T) {
	l := NewLocalizer()
	p := testProvider("baidu_ernie")
	p.OptimizerTag = OptimizerChinese
	cc := NewCulturalContext(ChineseSimplified, RegionChina,
		NuanceFormalLanguage, NuanceBusinessContext, NuanceContentFiltering)

	got := l.Localize("市场前景如何", p, cc)

	// Domain framing wraps the register prefix; the compliance suffix
	// closes the prompt.
	if !strings.HasPrefix(got, "从商业角度分析：请以正式的语言风格回答：") {
		t.Errorf("unexpected prefix order: %q", got)
	}
	if !strings.HasSuffix(got, "（请确保回答符合相关法规要求）") {
		t.Errorf("missing compliance suffix: %q", got)
	}
	if !strings.Contains(got, "市场前景如何") {
		t.Errorf("original prompt lost: %q", got)
	}
}

func TestLocalizeFormalWinsOverCasual(t *testing.T) {
	l := NewLocalizer()
	p := testProvider("naver_clova")
	p.OptimizerTag = OptimizerKorean
	cc := NewCulturalContext(Korean, RegionKorea, NuanceCasualLanguage, NuanceFormalLanguage)

	got := l.Localize("안녕하세요", p, cc)
	if !strings.HasPrefix(got, "정중한 어조로 답변해 주세요: ") {
		t.Errorf("formal register must win when both are present: %q", got)
	}
}

func TestLocalizeAlwaysPrefix(t *testing.T) {
	l := NewLocalizer()
	p := testProvider("long")
	p.OptimizerTag = OptimizerLongContext
	cc := NewCulturalContext(ChineseSimplified, RegionChina)

	got := l.Localize("解释量子计算", p, cc)
	want := "请提供详细的分析和解释：解释量子计算"
	if got != want {
		t.Errorf("Localize = %q, want %q", got, want)
	}
}

func TestLocalizeEmptyPrompt(t *testing.T) {
	l := NewLocalizer()
	p := testProvider("baidu_ernie")
	p.OptimizerTag = OptimizerChinese
	cc := NewCulturalContext(ChineseSimplified, RegionChina, NuanceFormalLanguage)

	if got := l.Localize("", p, cc); got != "" {
		t.Errorf("empty prompt must pass through, got %q", got)
	}
}

func TestLocalizeNonEmptyStaysNonEmpty(t *testing.T) {
	l := NewLocalizer()
	cc := NewCulturalContext(ChineseSimplified, RegionChina,
		NuanceFormalLanguage, NuanceBusinessContext, NuanceGamingContext, NuanceContentFiltering)

	for _, tag := range []OptimizerTag{
		OptimizerChinese, OptimizerECommerce, OptimizerGaming,
		OptimizerLongContext, OptimizerRussian, OptimizerKorean, OptimizerJapanese,
	} {
		p := testProvider(ProviderID(tag))
		p.OptimizerTag = tag
		if got := l.Localize("prompt", p, cc); got == "" {
			t.Errorf("optimizer %q produced an empty prompt", tag)
		}
	}
}

func TestLocalizerRegister(t *testing.T) {
	l := NewLocalizer()
	l.Register("custom", Optimizer{AlwaysPrefix: ">> "})

	p := testProvider("custom")
	p.OptimizerTag = "custom"
	cc := NewCulturalContext(English, RegionGlobal)

	if got := l.Localize("hi", p, cc); got != ">> hi" {
		t.Errorf("Localize with custom optimizer = %q, want \">> hi\"", got)
	}
}
