package intlai

import (
	"strings"
	"testing"
)

func TestHashText(t *testing.T) {
	h1 := HashText("hello world")
	h2 := HashText("hello world")
	if h1 != h2 {
		t.Error("identical text must hash identically")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 hex characters", len(h1))
	}
	if HashText("hello world") == HashText("hello mars") {
		t.Error("different text must hash differently")
	}
}

func TestHashTextTrimsWhitespace(t *testing.T) {
	if HashText("  hello  ") != HashText("hello") {
		t.Error("surrounding whitespace must not change the hash")
	}
}

func TestTranslationKey(t *testing.T) {
	key := TranslationKey("hello", ChineseSimplified)

	if !strings.HasSuffix(key, ":zh") {
		t.Errorf("key = %q, want language suffix :zh", key)
	}
	if key == TranslationKey("hello", English) {
		t.Error("same text with different targets must yield different keys")
	}
	if key != TranslationKey("hello", ChineseSimplified) {
		t.Error("key generation must be deterministic")
	}
}
