package intlai

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(testProvider("p1")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}

	p, ok := r.Get("p1")
	if !ok || p.ID != "p1" {
		t.Errorf("Get(p1) = %v, %v", p, ok)
	}
}

func TestRegistryRegisterInvalid(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name     string
		provider *Provider
	}{
		{"nil provider", nil},
		{"empty id", &Provider{GenerateFunc: testProvider("x").GenerateFunc}},
		{"no generation function", &Provider{ID: "p1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.provider)
			if err == nil {
				t.Fatal("expected registration to fail")
			}
			var regErr *RegistryError
			if !errors.As(err, &regErr) {
				t.Errorf("expected *RegistryError, got %T", err)
			}
		})
	}
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testProvider("p1")); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	err := r.Register(testProvider("p1"))
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d after duplicate, want 1", r.Len())
	}
}

func TestRegistryProvidersOrder(t *testing.T) {
	r := NewRegistry()
	ids := []ProviderID{"c", "a", "b"}
	for _, id := range ids {
		if err := r.Register(testProvider(id)); err != nil {
			t.Fatalf("Register(%s) failed: %v", id, err)
		}
	}

	got := r.Providers()
	if len(got) != len(ids) {
		t.Fatalf("Providers returned %d entries, want %d", len(got), len(ids))
	}
	for i, p := range got {
		if p.ID != ids[i] {
			t.Errorf("Providers()[%d] = %q, want %q (registration order)", i, p.ID, ids[i])
		}
	}
}

func TestRegistryByRegion(t *testing.T) {
	r := NewRegistry()

	china := testProvider("china")
	china.Regions = []RegionCode{RegionChina}
	global := testProvider("global")
	global.Regions = []RegionCode{RegionGlobal}
	russia := testProvider("russia")
	russia.Regions = []RegionCode{RegionRussia}

	for _, p := range []*Provider{china, global, russia} {
		if err := r.Register(p); err != nil {
			t.Fatalf("Register(%s) failed: %v", p.ID, err)
		}
	}

	got := r.ByRegion(RegionChina)
	if len(got) != 2 {
		t.Fatalf("ByRegion(china) returned %d providers, want 2", len(got))
	}
	if got[0].ID != "china" || got[1].ID != "global" {
		t.Errorf("ByRegion order = [%s %s], want [china global]", got[0].ID, got[1].ID)
	}

	if got := r.ByRegion(RegionGlobal); len(got) != 3 {
		t.Errorf("ByRegion(global) returned %d providers, want all 3", len(got))
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(testProvider(ProviderID(fmt.Sprintf("p%d", i))))
		}(i)
		go func() {
			defer wg.Done()
			_ = r.Providers()
		}()
	}
	wg.Wait()

	if r.Len() != 20 {
		t.Errorf("Len = %d, want 20", r.Len())
	}
}
