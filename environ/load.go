package environ

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// LoadFile reads an environment definition from a YAML or
// JSON file, chosen by file extension.
func LoadFile(path string) (*Config, error) {
	const errCtx = "loading environment definition"

	by, err := os.ReadFile(path) //nolint:gosec // path from CLI flags
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var cfg Config

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(by, &cfg); err != nil {
			return nil, fmt.Errorf(
				"%s: %s: %w", errCtx, path, err,
			)
		}

	case ".json":
		if err := json.Unmarshal(by, &cfg); err != nil {
			return nil, fmt.Errorf(
				"%s: %s: %w", errCtx, path, err,
			)
		}

	default:
		return nil, fmt.Errorf(
			"%s: %s: unsupported extension %q",
			errCtx, path, ext,
		)
	}

	return &cfg, nil
}
