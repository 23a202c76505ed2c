package translate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/spiralgang/intlai"
)

// mockBackend is a scriptable translation backend.
type mockBackend struct {
	name      string
	languages []intlai.LanguageCode
	maxLen    int

	mu             sync.Mutex
	translateCalls int
	detectCalls    int
	translateErr   error
	detectErr      error
	detectResult   intlai.LanguageCode
}

func (m *mockBackend) Name() string { return m.name }

func (m *mockBackend) SupportedLanguages() []intlai.LanguageCode { return m.languages }

func (m *mockBackend) MaxTextLength() int { return m.maxLen }

func (m *mockBackend) Translate(ctx context.Context, text string, from, to intlai.LanguageCode) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.translateCalls++
	if m.translateErr != nil {
		return "", m.translateErr
	}
	return m.name + ":" + string(to) + ":" + text, nil
}

func (m *mockBackend) Detect(ctx context.Context, text string) (intlai.LanguageCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detectCalls++
	if m.detectErr != nil {
		return intlai.AutoDetect, m.detectErr
	}
	return m.detectResult, nil
}

func (m *mockBackend) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.translateCalls
}

// mockCache is an always-consistent in-memory cache for pipeline tests.
type mockCache struct {
	mu      sync.Mutex
	entries map[string]string
	sets    int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]string)}
}

func (c *mockCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *mockCache) Set(key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	c.sets++
	return nil
}

func allLanguages() []intlai.LanguageCode {
	return []intlai.LanguageCode{intlai.English, intlai.ChineseSimplified, intlai.Japanese, intlai.Russian}
}

func TestPipelineTranslate(t *testing.T) {
	b := &mockBackend{name: "primary", languages: allLanguages()}
	p := NewPipeline([]Backend{b})

	got := p.Translate(context.Background(), "hello", intlai.ChineseSimplified)
	if got != "primary:zh:hello" {
		t.Errorf("Translate = %q", got)
	}
}

func TestPipelineTranslatePassThrough(t *testing.T) {
	b := &mockBackend{name: "primary", languages: allLanguages()}
	p := NewPipeline([]Backend{b})

	if got := p.Translate(context.Background(), "", intlai.English); got != "" {
		t.Errorf("empty text must pass through, got %q", got)
	}
	if got := p.Translate(context.Background(), "hello", intlai.AutoDetect); got != "hello" {
		t.Errorf("AutoDetect target must pass through, got %q", got)
	}
	if b.calls() != 0 {
		t.Errorf("backend called %d times for pass-through inputs", b.calls())
	}
}

func TestPipelineCacheHit(t *testing.T) {
	b := &mockBackend{name: "primary", languages: allLanguages()}
	cache := newMockCache()
	p := NewPipeline([]Backend{b}, WithCache(cache))

	first := p.Translate(context.Background(), "hello", intlai.Japanese)
	second := p.Translate(context.Background(), "hello", intlai.Japanese)

	if first != second {
		t.Errorf("cache round-trip mismatch: %q vs %q", first, second)
	}
	if b.calls() != 1 {
		t.Errorf("backend calls = %d, want 1 (second call served from cache)", b.calls())
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}
}

func TestPipelineFallbackOrder(t *testing.T) {
	failing := &mockBackend{name: "first", languages: allLanguages(), translateErr: errors.New("down")}
	working := &mockBackend{name: "second", languages: allLanguages()}
	p := NewPipeline([]Backend{failing, working})

	got := p.Translate(context.Background(), "hello", intlai.Russian)
	if got != "second:ru:hello" {
		t.Errorf("Translate = %q, want fallback to second backend", got)
	}
	if failing.calls() != 1 {
		t.Errorf("first backend calls = %d, want 1", failing.calls())
	}
}

func TestPipelineSkipsBackendWithoutTarget(t *testing.T) {
	enOnly := &mockBackend{name: "en_only", languages: []intlai.LanguageCode{intlai.English}}
	full := &mockBackend{name: "full", languages: allLanguages()}
	p := NewPipeline([]Backend{enOnly, full})

	got := p.Translate(context.Background(), "hello", intlai.Japanese)
	if got != "full:ja:hello" {
		t.Errorf("Translate = %q, want full backend", got)
	}
	if enOnly.calls() != 0 {
		t.Error("backend without the target language was called")
	}
}

func TestPipelineDegradesToOriginal(t *testing.T) {
	b := &mockBackend{name: "down", languages: allLanguages(), translateErr: errors.New("unreachable")}
	p := NewPipeline([]Backend{b})

	if got := p.Translate(context.Background(), "hello", intlai.Japanese); got != "hello" {
		t.Errorf("Translate = %q, want original text when every backend fails", got)
	}

	empty := NewPipeline(nil)
	if got := empty.Translate(context.Background(), "hello", intlai.Japanese); got != "hello" {
		t.Errorf("Translate = %q, want original text with zero backends", got)
	}
}

func TestPipelineFailureNotCached(t *testing.T) {
	b := &mockBackend{name: "down", languages: allLanguages(), translateErr: errors.New("unreachable")}
	cache := newMockCache()
	p := NewPipeline([]Backend{b}, WithCache(cache))

	p.Translate(context.Background(), "hello", intlai.Japanese)
	if cache.sets != 0 {
		t.Errorf("cache sets = %d, degraded results must not be cached", cache.sets)
	}
}

func TestPipelineDetect(t *testing.T) {
	t.Run("dedicated detector wins", func(t *testing.T) {
		backend := &mockBackend{name: "b", languages: allLanguages(), detectResult: intlai.English}
		detector := &mockBackend{name: "d", detectResult: intlai.Russian}
		p := NewPipeline([]Backend{backend}, WithDetector(detector))

		if got := p.Detect(context.Background(), "привет"); got != intlai.Russian {
			t.Errorf("Detect = %q, want ru", got)
		}
		if backend.detectCalls != 0 {
			t.Error("primary backend probed despite dedicated detector")
		}
	})

	t.Run("falls back to primary backend", func(t *testing.T) {
		backend := &mockBackend{name: "b", languages: allLanguages(), detectResult: intlai.Japanese}
		p := NewPipeline([]Backend{backend})

		if got := p.Detect(context.Background(), "こんにちは"); got != intlai.Japanese {
			t.Errorf("Detect = %q, want ja", got)
		}
	})

	t.Run("failure reports AutoDetect", func(t *testing.T) {
		backend := &mockBackend{name: "b", detectErr: errors.New("undetectable")}
		p := NewPipeline([]Backend{backend})

		if got := p.Detect(context.Background(), "???"); got != intlai.AutoDetect {
			t.Errorf("Detect = %q, want auto", got)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		p := NewPipeline(nil)
		if got := p.Detect(context.Background(), ""); got != intlai.AutoDetect {
			t.Errorf("Detect = %q, want auto", got)
		}
	})
}

func TestTranslateResponse(t *testing.T) {
	b := &mockBackend{name: "primary", languages: allLanguages()}
	p := NewPipeline([]Backend{b})

	resp := &intlai.AIResponse{Content: "hello", Provider: "p", Language: intlai.English}

	t.Run("translates into the target", func(t *testing.T) {
		got := p.TranslateResponse(context.Background(), resp, intlai.Japanese)
		if got == resp {
			t.Fatal("expected a new response value")
		}
		if got.Content != "primary:ja:hello" || got.Language != intlai.Japanese {
			t.Errorf("response = %+v", got)
		}
		if got.Provider != resp.Provider {
			t.Error("provider field must carry over")
		}
		if resp.Content != "hello" {
			t.Error("original response was mutated")
		}
	})

	t.Run("no-op when language matches", func(t *testing.T) {
		if got := p.TranslateResponse(context.Background(), resp, intlai.English); got != resp {
			t.Error("matching language must return the response unchanged")
		}
	})

	t.Run("no-op for AutoDetect", func(t *testing.T) {
		if got := p.TranslateResponse(context.Background(), resp, intlai.AutoDetect); got != resp {
			t.Error("AutoDetect target must return the response unchanged")
		}
	})

	t.Run("nil response", func(t *testing.T) {
		if got := p.TranslateResponse(context.Background(), nil, intlai.Japanese); got != nil {
			t.Error("nil response must stay nil")
		}
	})
}
