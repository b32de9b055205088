package activate

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/cenv/environ"
)

const (
	metaBegin = "# --- cenv environment begin ---"
	metaEnd   = "# --- cenv environment end ---"
)

// ErrNoMeta is returned when a script carries no embedded
// definition block.
var ErrNoMeta = errors.New("no environment definition block")

// appendMeta writes the machine-readable definition block that
// ExtractMeta reads back. The definition is one JSON line behind a
// comment prefix, so the shell never sees it.
func appendMeta(
	sb *strings.Builder,
	cfg *environ.Config,
) error {
	by, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf(
			"encoding environment definition: %w", err,
		)
	}

	sb.WriteByte('\n')
	sb.WriteString(metaBegin)
	sb.WriteByte('\n')
	sb.WriteString("# ")
	sb.Write(by)
	sb.WriteByte('\n')
	sb.WriteString(metaEnd)
	sb.WriteByte('\n')

	return nil
}

// ExtractMeta reads the environment definition embedded in a
// generated script. It returns ErrNoMeta when no block is present
// and fails when a block is opened but never closed.
func ExtractMeta(script string) (*environ.Config, error) {
	const errCtx = "extracting environment definition"

	var (
		payload        []string
		betweenMarkers bool
		seen           bool
	)

	for _, ln := range strings.Split(script, "\n") {
		switch ln {
		case metaBegin:
			betweenMarkers = true
			seen = true
		case metaEnd:
			betweenMarkers = false
		default:
			if betweenMarkers {
				payload = append(
					payload,
					strings.TrimPrefix(ln, "# "),
				)
			}
		}
	}

	if betweenMarkers {
		return nil, fmt.Errorf(
			"%s: missing end marker", errCtx,
		)
	}

	if !seen {
		return nil, fmt.Errorf(
			"%s: %w", errCtx, ErrNoMeta,
		)
	}

	var cfg environ.Config

	if err := json.Unmarshal(
		[]byte(strings.Join(payload, "\n")), &cfg,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return &cfg, nil
}
