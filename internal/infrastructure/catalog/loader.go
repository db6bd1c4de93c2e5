package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
)

// Load builds the wish catalog. An empty path yields the built-in wishes; otherwise the
// file must hold a YAML sequence of strings (a JSON array works too).
func Load(path string) (*entity.WishCatalog, error) {
	if path == "" {
		return entity.NewWishCatalog(entity.DefaultWishes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wishes file: %w", err)
	}
	var wishes []string
	if err := yaml.Unmarshal(data, &wishes); err != nil {
		return nil, fmt.Errorf("failed to parse wishes file %s: %w", path, err)
	}
	c, err := entity.NewWishCatalog(wishes)
	if err != nil {
		return nil, fmt.Errorf("invalid wishes file %s: %w", path, err)
	}
	return c, nil
}
