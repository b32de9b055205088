// Package environ models an environment definition: the
// folder the environment lives in, the substitution
// variables, the extra exported variables, and the path
// suffix lists the activation script is generated from.
package environ

import (
	"strings"
)

// Config describes one environment to generate. The zero
// value is a valid starting point; ApplyDefaults fills in
// the conventional pieces afterwards.
type Config struct {
	// Folder is the environment directory. It is the
	// only mandatory field.
	Folder string `json:"folder,omitempty" yaml:"folder,omitempty"`

	// Root is the directory the path suffixes are
	// resolved against. Defaults to Folder.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`

	// Prompt is prepended to PS1 inside the activated
	// environment. Defaults to "(<folder name>) ".
	Prompt string `json:"prompt,omitempty" yaml:"prompt,omitempty"`

	// Variables are the substitution variables available
	// to prompt, suffix and export templates.
	Variables map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`

	// Exports are extra environment variables set by the
	// activation script. Values are templates.
	Exports map[string]string `json:"exports,omitempty" yaml:"exports,omitempty"`

	// ExecSuffixes extend PATH.
	ExecSuffixes []string `json:"executable_suffixes,omitempty" yaml:"executable_suffixes,omitempty"`

	// IncludeSuffixes extend C_INCLUDE_PATH.
	IncludeSuffixes []string `json:"include_suffixes,omitempty" yaml:"include_suffixes,omitempty"`

	// InfoSuffixes extend INFOPATH.
	InfoSuffixes []string `json:"info_suffixes,omitempty" yaml:"info_suffixes,omitempty"`

	// LibSuffixes extend LIBRARY_PATH, LD_LIBRARY_PATH
	// and DYLD_LIBRARY_PATH.
	LibSuffixes []string `json:"library_suffixes,omitempty" yaml:"library_suffixes,omitempty"`

	// ManSuffixes extend MANPATH.
	ManSuffixes []string `json:"manpage_suffixes,omitempty" yaml:"manpage_suffixes,omitempty"`

	// PkgConfigSuffixes extend PKG_CONFIG_PATH.
	PkgConfigSuffixes []string `json:"pkgconfig_suffixes,omitempty" yaml:"pkgconfig_suffixes,omitempty"`
}

// ApplyDefaults adds the conventional layout of a build
// environment to c: the "(name) " prompt, the root, and
// the usual bin/include/lib/man suffixes. Machine-specific
// suffixes are only added when the variable they reference
// (mach_type, mach_x32, mach_32, mach_64) is defined, so
// their templates always resolve. Suffixes already present
// stay ahead of the defaults.
func (c *Config) ApplyDefaults() {
	if c.Prompt == "" {
		c.Prompt = "(" + folderName(c.Folder) + ") "
	}

	if c.Root == "" {
		c.Root = c.Folder
	}

	c.ExecSuffixes = append(c.ExecSuffixes, "bin")

	c.IncludeSuffixes = append(
		c.IncludeSuffixes, "include",
	)
	if c.hasVariable("mach_type") {
		c.IncludeSuffixes = append(
			c.IncludeSuffixes, "include/${mach_type}",
		)
	}

	c.InfoSuffixes = append(c.InfoSuffixes, "share/info")

	c.LibSuffixes = append(c.LibSuffixes, "lib")
	if c.hasVariable("mach_type") {
		c.LibSuffixes = append(
			c.LibSuffixes, "lib/${mach_type}",
		)
	}
	// x86 multilib layouts.
	if c.hasVariable("mach_x32") {
		c.LibSuffixes = append(c.LibSuffixes, "libx32")
	}
	if c.hasVariable("mach_32") {
		c.LibSuffixes = append(c.LibSuffixes, "lib32")
	}
	if c.hasVariable("mach_64") {
		c.LibSuffixes = append(c.LibSuffixes, "lib64")
	}

	c.ManSuffixes = append(
		c.ManSuffixes, "man", "share/man",
	)

	c.PkgConfigSuffixes = append(
		c.PkgConfigSuffixes,
		"lib/pkgconfig", "share/pkgconfig",
	)
	if c.hasVariable("mach_type") {
		c.PkgConfigSuffixes = append(
			c.PkgConfigSuffixes,
			"lib/${mach_type}/pkgconfig",
		)
	}
}

// Merge lays o over c. Non-empty scalars replace, map
// entries are copied with o winning on collision, and o's
// suffixes are pushed one by one onto the front of c's
// lists so the overlay keeps the highest precedence.
func (c *Config) Merge(o *Config) {
	if o.Folder != "" {
		c.Folder = o.Folder
	}

	if o.Root != "" {
		c.Root = o.Root
	}

	if o.Prompt != "" {
		c.Prompt = o.Prompt
	}

	c.Variables = mergeMap(c.Variables, o.Variables)
	c.Exports = mergeMap(c.Exports, o.Exports)

	c.ExecSuffixes = pushFront(
		c.ExecSuffixes, o.ExecSuffixes,
	)
	c.IncludeSuffixes = pushFront(
		c.IncludeSuffixes, o.IncludeSuffixes,
	)
	c.InfoSuffixes = pushFront(
		c.InfoSuffixes, o.InfoSuffixes,
	)
	c.LibSuffixes = pushFront(
		c.LibSuffixes, o.LibSuffixes,
	)
	c.ManSuffixes = pushFront(
		c.ManSuffixes, o.ManSuffixes,
	)
	c.PkgConfigSuffixes = pushFront(
		c.PkgConfigSuffixes, o.PkgConfigSuffixes,
	)
}

func (c *Config) hasVariable(name string) bool {
	_, found := c.Variables[name]

	return found
}

// folderName returns the text after the last '/', which is
// the whole string when there is no slash.
func folderName(folder string) string {
	return folder[strings.LastIndexByte(folder, '/')+1:]
}

func mergeMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}

	if dst == nil {
		dst = make(map[string]string, len(src))
	}

	for key, val := range src {
		dst[key] = val
	}

	return dst
}

// pushFront prepends each element of src in turn, so the
// last one ends up first.
func pushFront(dst, src []string) []string {
	for _, s := range src {
		dst = append([]string{s}, dst...)
	}

	return dst
}
