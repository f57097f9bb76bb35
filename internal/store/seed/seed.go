package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/lootlogger/internal/model"
)

// Read-only seed files used to pre-populate a session's store.
// Nothing is ever written back; the list lives for one session.

// ErrUnknownFormat is returned for a seed file that is neither JSON nor YAML.
var ErrUnknownFormat = errors.New("unknown seed format")

// Adder is the part of the item store a seed file feeds into.
type Adder interface {
	AddItem(model.Item) model.Item
}

// Load reads items from path. The format follows the extension:
// .json, or .yaml/.yml.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return Parse(b, filepath.Ext(path))
}

// Parse decodes seed content; ext selects the decoder.
func Parse(b []byte, ext string) ([]model.Item, error) {
	var items []model.Item
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Into loads path and appends every item to dst in file order.
func Into(dst Adder, path string) (int, error) {
	items, err := Load(path)
	if err != nil {
		return 0, err
	}
	for _, it := range items {
		dst.AddItem(it)
	}
	return len(items), nil
}
