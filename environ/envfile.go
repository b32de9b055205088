package environ

import (
	"fmt"
	"os"
	"strings"
)

// LoadVarFiles reads substitution variables from files and merges
// them into a single map, later files overriding earlier ones. Each
// line is "KEY=VALUE" with the first equals sign as delimiter and
// surrounding whitespace trimmed. Blank lines and lines starting
// with '#' are skipped.
func LoadVarFiles(paths []string) (map[string]string, error) {
	const errCtx = "loading variable files"

	vars := make(map[string]string)

	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		for _, line := range strings.Split(
			string(content), "\n",
		) {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf(
					"%s: %s: line %q is not KEY=VALUE",
					errCtx, path, line,
				)
			}

			vars[parts[0]] = parts[1]
		}
	}

	return vars, nil
}
