package translate

import (
	"context"
	"errors"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
	"github.com/spiralgang/intlai"
)

var errUndetectable = errors.New("language could not be determined")

// linguaLanguages restricts the detector to the engine's language table,
// which keeps the models small and the classification unambiguous.
var linguaLanguages = []lingua.Language{
	lingua.English,
	lingua.Chinese,
	lingua.Russian,
	lingua.Korean,
	lingua.Japanese,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Hebrew,
}

// LinguaDetector detects languages offline using statistical models. It
// performs no I/O and is safe for concurrent use.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector over the engine's language table.
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(linguaLanguages...).
			Build(),
	}
}

// Detect identifies the language of the text.
func (d *LinguaDetector) Detect(ctx context.Context, text string) (intlai.LanguageCode, error) {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return intlai.AutoDetect, errUndetectable
	}

	language, exists := d.detector.DetectLanguageOf(sample)
	if !exists {
		return intlai.AutoDetect, errUndetectable
	}

	code := strings.ToLower(language.IsoCode639_1().String())
	lang := intlai.LanguageFromCode(code)
	if lang == intlai.AutoDetect {
		return intlai.AutoDetect, errUndetectable
	}
	return lang, nil
}

// Verify LinguaDetector implements Detector
var _ Detector = (*LinguaDetector)(nil)
