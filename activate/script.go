package activate

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/cenv/environ"
	"github.com/byte4ever/cenv/expand"
)

// prelude opens every script: the sourcing warning and the helpers
// that save and restore one variable by name.
const prelude = `# Activate script generated by cenv
# Use the . command in the shell, do not run this script

# Args: $1 - variable name
__cenv_defined () {
  ! [ "x${!1+x}" = x ]
}
# Args: $1 - variable name
__cenv_savevar () {
  if __cenv_defined "$1"; then
    printf -v __CENV_$1_DEFINED yes
    printf -v __CENV_$1_ORIG "%s" "${!1}"
  fi
}
# Args: $1 - variable name
__cenv_restorevar () {
  printf -v __CENV_TMP "__CENV_%s_DEFINED" "$1"
  if [ "x${!__CENV_TMP}" = xyes ]; then
    printf -v __CENV_TMP "__CENV_%s_ORIG" "$1"
    printf -v $1 "%s" "${!__CENV_TMP}"
    export $1
  else
    unset $1
  fi
  unset __CENV_TMP
  unset __CENV_$1_DEFINED
  unset __CENV_$1_ORIG
}
`

// Line templates rendered with fasttemplate. Shell ${...} text
// passes through untouched; only @...@ pairs are tags.
const (
	tagStart = "@"
	tagEnd   = "@"

	saveLine    = "__cenv_savevar @NAME@\n"
	restoreLine = "  __cenv_restorevar @NAME@\n"
	exportLine  = "export @NAME@\n"
	promptLine  = "PS1=\"@PROMPT@${PS1}\"\n"
	entryLine   = "@NAME@=\"@ENTRY@${@NAME@+:}${@NAME@}\"\n"
	assignLine  = "@NAME@=\"@VALUE@\"\n"
)

// pathTarget binds one suffix list to the search-path variables it
// extends, in script order.
type pathTarget struct {
	names    []string
	suffixes []string
}

func pathTargets(cfg *environ.Config) []pathTarget {
	return []pathTarget{
		{
			names:    []string{"PATH"},
			suffixes: cfg.ExecSuffixes,
		},
		{
			names:    []string{"C_INCLUDE_PATH"},
			suffixes: cfg.IncludeSuffixes,
		},
		{
			names:    []string{"INFOPATH"},
			suffixes: cfg.InfoSuffixes,
		},
		{
			names: []string{
				"LIBRARY_PATH",
				"LD_LIBRARY_PATH",
				"DYLD_LIBRARY_PATH",
			},
			suffixes: cfg.LibSuffixes,
		},
		{
			names:    []string{"MANPATH"},
			suffixes: cfg.ManSuffixes,
		},
		{
			names:    []string{"PKG_CONFIG_PATH"},
			suffixes: cfg.PkgConfigSuffixes,
		},
	}
}

// Render produces the complete activation script for cfg. Prompt,
// suffix and export templates are substituted against cfg.Variables;
// any substitution failure aborts the rendering and no script text
// is returned.
func Render(cfg *environ.Config) (string, error) {
	const errCtx = "rendering activation script"

	prompt, err := expand.Expand(cfg.Prompt, cfg.Variables)
	if err != nil {
		return "", fmt.Errorf(
			"%s: prompt: %w", errCtx, err,
		)
	}

	targets := pathTargets(cfg)

	// Resolve every suffix template before emitting anything.
	entries := make([][]string, len(targets))

	for i, tg := range targets {
		entries[i] = make([]string, 0, len(tg.suffixes))

		for _, suffix := range tg.suffixes {
			expanded, err := expand.Expand(
				suffix, cfg.Variables,
			)
			if err != nil {
				return "", fmt.Errorf(
					"%s: suffix %q: %w",
					errCtx, suffix, err,
				)
			}

			entries[i] = append(
				entries[i],
				cfg.Root+"/"+expanded,
			)
		}
	}

	exportNames := make([]string, 0, len(cfg.Exports))
	for name := range cfg.Exports {
		exportNames = append(exportNames, name)
	}

	sort.Strings(exportNames)

	exportValues := make(
		map[string]string, len(cfg.Exports),
	)

	for _, name := range exportNames {
		val, err := expand.Expand(
			cfg.Exports[name], cfg.Variables,
		)
		if err != nil {
			return "", fmt.Errorf(
				"%s: export %s: %w", errCtx, name, err,
			)
		}

		exportValues[name] = val
	}

	var sb strings.Builder

	sb.WriteString(prelude)

	// deactivate restores exactly what the body below sets.
	sb.WriteString("deactivate () {\n")
	sb.WriteString(line(
		restoreLine,
		map[string]interface{}{"NAME": "PS1"},
	))

	for i, tg := range targets {
		if len(entries[i]) == 0 {
			continue
		}

		for _, name := range tg.names {
			sb.WriteString(line(
				restoreLine,
				map[string]interface{}{"NAME": name},
			))
		}
	}

	for _, name := range exportNames {
		sb.WriteString(line(
			restoreLine,
			map[string]interface{}{"NAME": name},
		))
	}

	sb.WriteString("}\n")

	sb.WriteString(line(
		saveLine,
		map[string]interface{}{"NAME": "PS1"},
	))
	sb.WriteString(line(
		promptLine,
		map[string]interface{}{"PROMPT": prompt},
	))

	for i, tg := range targets {
		if len(entries[i]) == 0 {
			continue
		}

		for _, name := range tg.names {
			sb.WriteString(line(
				saveLine,
				map[string]interface{}{"NAME": name},
			))

			for _, entry := range entries[i] {
				sb.WriteString(line(
					entryLine,
					map[string]interface{}{
						"NAME":  name,
						"ENTRY": entry,
					},
				))
			}

			sb.WriteString(line(
				exportLine,
				map[string]interface{}{"NAME": name},
			))
		}
	}

	for _, name := range exportNames {
		sb.WriteString(line(
			saveLine,
			map[string]interface{}{"NAME": name},
		))
		sb.WriteString(line(
			assignLine,
			map[string]interface{}{
				"NAME":  name,
				"VALUE": exportValues[name],
			},
		))
		sb.WriteString(line(
			exportLine,
			map[string]interface{}{"NAME": name},
		))
	}

	if err := appendMeta(&sb, cfg); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return sb.String(), nil
}

// WriteFile renders cfg and writes the script to path. The script is
// fully rendered before the file is opened, so a substitution failure
// never leaves a truncated script behind.
func WriteFile(
	path string,
	cfg *environ.Config,
) (retErr error) {
	const errCtx = "writing activation script"

	script, err := Render(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	fi, err := os.OpenFile( //nolint:gosec // path from CLI flags
		path,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		0o666,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	if _, err := io.WriteString(fi, script); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func line(tpl string, vars map[string]interface{}) string {
	return fasttemplate.ExecuteStringStd(
		tpl, tagStart, tagEnd, vars,
	)
}
