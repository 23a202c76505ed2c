package intlai

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// TranslationKey generates a cache key from text content and a target
// language. Identical text always maps to the same key for a language.
func TranslationKey(text string, target LanguageCode) string {
	return HashText(text) + ":" + string(target)
}
