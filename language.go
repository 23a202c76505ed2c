package intlai

import (
	"strings"

	"golang.org/x/text/language"
)

// LanguageCode identifies a supported language. Values follow ISO 639-1,
// with a "-TW" suffix distinguishing Traditional Chinese and the sentinel
// AutoDetect standing in for "not yet determined".
type LanguageCode string

const (
	English            LanguageCode = "en"
	ChineseSimplified  LanguageCode = "zh"
	ChineseTraditional LanguageCode = "zh-TW"
	Russian            LanguageCode = "ru"
	Korean             LanguageCode = "ko"
	Japanese           LanguageCode = "ja"
	Spanish            LanguageCode = "es"
	French             LanguageCode = "fr"
	German             LanguageCode = "de"
	Italian            LanguageCode = "it"
	Portuguese         LanguageCode = "pt"
	Arabic             LanguageCode = "ar"
	Hindi              LanguageCode = "hi"
	Hebrew             LanguageCode = "he"

	// AutoDetect asks the engine to detect the language from the text.
	AutoDetect LanguageCode = "auto"
)

// languageOrder fixes the declaration order of the language table.
var languageOrder = []LanguageCode{
	English, ChineseSimplified, ChineseTraditional, Russian, Korean,
	Japanese, Spanish, French, German, Italian, Portuguese, Arabic,
	Hindi, Hebrew, AutoDetect,
}

var languageNames = map[LanguageCode]string{
	English:            "English",
	ChineseSimplified:  "简体中文",
	ChineseTraditional: "繁體中文",
	Russian:            "Русский",
	Korean:             "한국어",
	Japanese:           "日本語",
	Spanish:            "Español",
	French:             "Français",
	German:             "Deutsch",
	Italian:            "Italiano",
	Portuguese:         "Português",
	Arabic:             "العربية",
	Hindi:              "हिन्दी",
	Hebrew:             "עברית",
	AutoDetect:         "Auto Detect",
}

// Languages returns every known language code in declaration order,
// AutoDetect last.
func Languages() []LanguageCode {
	out := make([]LanguageCode, len(languageOrder))
	copy(out, languageOrder)
	return out
}

// Code returns the machine code (e.g. "en").
func (l LanguageCode) Code() string { return string(l) }

// DisplayName returns the human-readable label, falling back to the code
// itself for unknown values.
func (l LanguageCode) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

// Valid reports whether the code is part of the language table.
func (l LanguageCode) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

// LanguageFromCode resolves a machine code to a LanguageCode.
// Unknown codes resolve to AutoDetect.
func LanguageFromCode(code string) LanguageCode {
	normalized := strings.TrimSpace(code)
	for _, l := range languageOrder {
		if strings.EqualFold(string(l), normalized) {
			return l
		}
	}
	return AutoDetect
}

// LanguageFromLocale resolves a BCP 47 locale tag (e.g. "zh-Hant-TW",
// "en_US") to a LanguageCode by base-language match. Unparseable or
// unknown locales resolve to AutoDetect.
func LanguageFromLocale(locale string) LanguageCode {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return AutoDetect
	}

	base, _ := tag.Base()
	if base.String() == "zh" {
		script, conf := tag.Script()
		if conf != language.No && script.String() == "Hant" {
			return ChineseTraditional
		}
		return ChineseSimplified
	}

	return LanguageFromCode(base.String())
}

// RegionCode identifies a geographic or regulatory region. RegionGlobal is
// a wildcard that matches any region-scoped filter.
type RegionCode string

const (
	RegionGlobal RegionCode = "global"
	RegionChina  RegionCode = "cn"
	RegionUSA    RegionCode = "us"
	RegionEurope RegionCode = "eu"
	RegionRussia RegionCode = "ru"
	RegionKorea  RegionCode = "kr"
	RegionJapan  RegionCode = "jp"
	RegionCanada RegionCode = "ca"
	RegionIsrael RegionCode = "il"
	RegionUK     RegionCode = "uk"
)

var regionNames = map[RegionCode]string{
	RegionGlobal: "Global",
	RegionChina:  "China",
	RegionUSA:    "United States",
	RegionEurope: "Europe",
	RegionRussia: "Russia",
	RegionKorea:  "South Korea",
	RegionJapan:  "Japan",
	RegionCanada: "Canada",
	RegionIsrael: "Israel",
	RegionUK:     "United Kingdom",
}

// countryRegions maps ISO 3166-1 country codes to regions.
var countryRegions = map[string]RegionCode{
	"CN": RegionChina,
	"US": RegionUSA,
	"RU": RegionRussia,
	"KR": RegionKorea,
	"JP": RegionJapan,
	"CA": RegionCanada,
	"IL": RegionIsrael,
	"GB": RegionUK,
}

// DisplayName returns the human-readable label for the region.
func (r RegionCode) DisplayName() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return string(r)
}

// Valid reports whether the code is part of the region table.
func (r RegionCode) Valid() bool {
	_, ok := regionNames[r]
	return ok
}

// RegionFromCode resolves a machine code to a RegionCode.
// Unknown codes resolve to RegionGlobal.
func RegionFromCode(code string) RegionCode {
	normalized := RegionCode(strings.ToLower(strings.TrimSpace(code)))
	if normalized.Valid() {
		return normalized
	}
	return RegionGlobal
}

// RegionFromLocale derives a region from a BCP 47 locale tag's country
// part. Locales without a recognized country resolve to RegionGlobal.
func RegionFromLocale(locale string) RegionCode {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return RegionGlobal
	}

	// Only trust a region the locale actually carries; x/text otherwise
	// guesses a likely one ("en" -> US).
	region, conf := tag.Region()
	if conf != language.Exact {
		return RegionGlobal
	}
	if r, ok := countryRegions[region.String()]; ok {
		return r
	}
	return RegionGlobal
}
