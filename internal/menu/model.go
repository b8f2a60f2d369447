package menu

import "strings"

// Menu is the authoritative name → unit price table used to validate
// extracted receipt prices. It is built once at startup and read-only
// afterwards, so it is safe to share across sessions.
type Menu struct {
	prices map[string]float64
}

// New builds a Menu from raw rows. Keys are case-folded so lookups
// ignore capitalization.
func New(prices map[string]float64) *Menu {
	folded := make(map[string]float64, len(prices))
	for name, price := range prices {
		folded[strings.ToLower(name)] = price
	}
	return &Menu{prices: folded}
}

// Lookup returns the reference unit price for a (case-insensitive) name.
func (m *Menu) Lookup(name string) (float64, bool) {
	price, ok := m.prices[strings.ToLower(name)]
	return price, ok
}

// Len reports how many items the menu carries.
func (m *Menu) Len() int {
	return len(m.prices)
}
