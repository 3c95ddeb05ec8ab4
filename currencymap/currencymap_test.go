package currencymap_test

import (
	"testing"

	"github.com/ducat/money/currencymap"
	"github.com/ducat/money/iso"
)

func TestNew(t *testing.T) {
	m := currencymap.New(iso.All()...)
	if m.Len() != len(iso.All()) {
		t.Errorf("m.Len() = %v, want %v", m.Len(), len(iso.All()))
	}

	c, ok := m.Get("USD")
	if !ok {
		t.Fatalf("m.Get(%q) not found", "USD")
	}
	if c != (iso.USD{}) {
		t.Errorf("m.Get(%q) = %v, want %v", "USD", c, iso.USD{})
	}

	if _, ok := m.Get("XXX_UNKNOWN"); ok {
		t.Errorf("m.Get(%q) found, want not found", "XXX_UNKNOWN")
	}
}

func TestMap_Get_caseSensitive(t *testing.T) {
	m := currencymap.New(iso.USD{})
	if _, ok := m.Get("usd"); ok {
		t.Errorf("m.Get(%q) found, want not found", "usd")
	}
}

func TestMap_Insert(t *testing.T) {
	m := currencymap.New()

	if prev := m.Insert(iso.USD{}); prev != nil {
		t.Errorf("m.Insert(USD) = %v, want nil", prev)
	}
	if m.Len() != 1 {
		t.Errorf("m.Len() = %v, want 1", m.Len())
	}

	// Re-registering a code returns the displaced currency.
	if prev := m.Insert(iso.USD{}); prev != (iso.USD{}) {
		t.Errorf("m.Insert(USD) = %v, want %v", prev, iso.USD{})
	}
	if m.Len() != 1 {
		t.Errorf("m.Len() = %v, want 1", m.Len())
	}
}
