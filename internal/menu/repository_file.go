package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileSource reads the price list from a JSON file shaped as a flat
// object of item name → unit price.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (map[string]float64, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	var prices map[string]float64
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, fmt.Errorf("invalid menu file %s: %w", s.Path, err)
	}

	return prices, nil
}
