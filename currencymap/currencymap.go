// Package currencymap provides a registry resolving currency codes to
// runtime [money.Currency] references.
//
// A typical program builds one Map during initialization, for example
// from [iso.All], and only reads it afterwards. A Map is safe for
// concurrent reads; it is not safe to call Insert concurrently with
// any other method.
package currencymap

import "github.com/ducat/money"

// Map maps currency codes to [money.Currency] references.
type Map struct {
	byCode map[string]money.Currency
}

// New returns a Map populated with the given currencies, keyed by
// their codes. If several currencies report the same code, the last
// one wins.
func New(currencies ...money.Currency) *Map {
	m := &Map{byCode: make(map[string]money.Currency, len(currencies))}
	for _, c := range currencies {
		m.byCode[c.Code()] = c
	}
	return m
}

// Insert adds a currency to the map, keyed by its code, and returns
// the currency previously registered under the same code, or nil if
// there was none.
func (m *Map) Insert(c money.Currency) money.Currency {
	prev := m.byCode[c.Code()]
	m.byCode[c.Code()] = c
	return prev
}

// Get returns the currency registered under the given code.
// The lookup is case-sensitive and exact-match only.
func (m *Map) Get(code string) (money.Currency, bool) {
	c, ok := m.byCode[code]
	return c, ok
}

// Len returns the number of registered currencies.
func (m *Map) Len() int {
	return len(m.byCode)
}
