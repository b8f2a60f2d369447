package menu

import "context"

// Source loads the raw name → price rows the process builds its Menu
// from. Loading happens exactly once, before the first request.
type Source interface {
	Load(ctx context.Context) (map[string]float64, error)
}
