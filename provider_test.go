package intlai

import (
	"context"
	"errors"
	"testing"
)

func testProvider(id ProviderID) *Provider {
	return &Provider{
		ID:        id,
		Name:      string(id),
		Languages: []LanguageCode{English, ChineseSimplified},
		Regions:   []RegionCode{RegionChina},
		GenerateFunc: func(ctx context.Context, prompt string, lang LanguageCode, cc *CulturalContext) (*AIResponse, error) {
			return &AIResponse{Content: "ok", Provider: id, Language: lang}, nil
		},
	}
}

func TestProviderSupportsLanguage(t *testing.T) {
	p := testProvider("p1")

	if !p.SupportsLanguage(English) {
		t.Error("expected English to be supported")
	}
	if p.SupportsLanguage(Russian) {
		t.Error("expected Russian to be unsupported")
	}
}

func TestProviderSupportsRegion(t *testing.T) {
	regional := testProvider("regional")
	global := testProvider("global")
	global.Regions = []RegionCode{RegionGlobal}

	tests := []struct {
		name     string
		provider *Provider
		region   RegionCode
		want     bool
	}{
		{"exact match", regional, RegionChina, true},
		{"no match", regional, RegionRussia, false},
		{"global request matches any provider", regional, RegionGlobal, true},
		{"global provider matches any request", global, RegionKorea, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.provider.SupportsRegion(tt.region); got != tt.want {
				t.Errorf("SupportsRegion(%q) = %v, want %v", tt.region, got, tt.want)
			}
		})
	}
}

func TestProviderCheckHealth(t *testing.T) {
	t.Run("nil probe assumes reachable", func(t *testing.T) {
		p := testProvider("p1")
		if got := p.CheckHealth(context.Background()); got != StatusAvailable {
			t.Errorf("CheckHealth = %q, want %q", got, StatusAvailable)
		}
	})

	t.Run("probe result is passed through", func(t *testing.T) {
		p := testProvider("p1")
		p.HealthFunc = func(ctx context.Context) AccessStatus { return StatusQuotaExceeded }
		if got := p.CheckHealth(context.Background()); got != StatusQuotaExceeded {
			t.Errorf("CheckHealth = %q, want %q", got, StatusQuotaExceeded)
		}
	})

	t.Run("panicking probe reports unknown", func(t *testing.T) {
		p := testProvider("p1")
		p.HealthFunc = func(ctx context.Context) AccessStatus { panic("boom") }
		if got := p.CheckHealth(context.Background()); got != StatusUnknown {
			t.Errorf("CheckHealth = %q, want %q", got, StatusUnknown)
		}
	})
}

func TestProviderGenerateWithoutFunc(t *testing.T) {
	p := &Provider{ID: "broken"}

	_, err := p.Generate(context.Background(), "hello", English, nil)
	if err == nil {
		t.Fatal("expected error for provider without generation function")
	}

	var callErr *ProviderCallError
	if !errors.As(err, &callErr) {
		t.Fatalf("expected *ProviderCallError, got %T", err)
	}
	if callErr.Provider != "broken" {
		t.Errorf("error provider = %q, want broken", callErr.Provider)
	}
}

func TestOptimalEndpoint(t *testing.T) {
	p := testProvider("p1")
	p.Endpoints = []Endpoint{
		{URL: "https://backup.example.com/", Region: RegionChina, Priority: 2, Health: StatusAvailable},
		{URL: "https://primary.example.com/", Region: RegionChina, Priority: 1, Health: StatusAvailable},
		{URL: "https://global.example.com/", Region: RegionGlobal, Priority: 3, Health: StatusAvailable},
	}

	t.Run("lowest priority wins", func(t *testing.T) {
		e, ok := p.OptimalEndpoint(RegionChina)
		if !ok {
			t.Fatal("expected an endpoint")
		}
		if e.URL != "https://primary.example.com/" {
			t.Errorf("endpoint = %q, want primary", e.URL)
		}
	})

	t.Run("unhealthy endpoints are skipped", func(t *testing.T) {
		p.Endpoints[1].Health = StatusError
		defer func() { p.Endpoints[1].Health = StatusAvailable }()

		e, ok := p.OptimalEndpoint(RegionChina)
		if !ok {
			t.Fatal("expected an endpoint")
		}
		if e.URL != "https://backup.example.com/" {
			t.Errorf("endpoint = %q, want backup", e.URL)
		}
	})

	t.Run("global endpoint serves other regions", func(t *testing.T) {
		e, ok := p.OptimalEndpoint(RegionKorea)
		if !ok {
			t.Fatal("expected the global endpoint")
		}
		if e.URL != "https://global.example.com/" {
			t.Errorf("endpoint = %q, want global", e.URL)
		}
	})

	t.Run("no match", func(t *testing.T) {
		bare := testProvider("bare")
		if _, ok := bare.OptimalEndpoint(RegionChina); ok {
			t.Error("expected no endpoint for provider without endpoints")
		}
	})
}

func TestAIResponseWithMetadata(t *testing.T) {
	orig := &AIResponse{Content: "hello", Metadata: map[string]string{"model": "glm-4"}}

	out := orig.WithMetadata("request_id", "abc")
	if out == orig {
		t.Fatal("WithMetadata must return a copy")
	}
	if out.Metadata["model"] != "glm-4" || out.Metadata["request_id"] != "abc" {
		t.Errorf("metadata = %v", out.Metadata)
	}
	if _, ok := orig.Metadata["request_id"]; ok {
		t.Error("original metadata was mutated")
	}
}
