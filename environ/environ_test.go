package environ_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/cenv/environ"
)

func TestApplyDefaults_plain_layout(t *testing.T) {
	t.Parallel()

	cfg := environ.Config{Folder: "/work/myenv"}
	cfg.ApplyDefaults()

	assert.Equal(t, "(myenv) ", cfg.Prompt)
	assert.Equal(t, "/work/myenv", cfg.Root)
	assert.Equal(t, []string{"bin"}, cfg.ExecSuffixes)
	assert.Equal(
		t, []string{"include"}, cfg.IncludeSuffixes,
	)
	assert.Equal(
		t, []string{"share/info"}, cfg.InfoSuffixes,
	)
	assert.Equal(t, []string{"lib"}, cfg.LibSuffixes)
	assert.Equal(
		t,
		[]string{"man", "share/man"},
		cfg.ManSuffixes,
	)
	assert.Equal(
		t,
		[]string{"lib/pkgconfig", "share/pkgconfig"},
		cfg.PkgConfigSuffixes,
	)
}

func TestApplyDefaults_machine_type_suffixes(t *testing.T) {
	t.Parallel()

	cfg := environ.Config{
		Folder: "/work/myenv",
		Variables: map[string]string{
			"mach_type": "x86_64-linux-gnu",
		},
	}
	cfg.ApplyDefaults()

	assert.Equal(
		t,
		[]string{"include", "include/${mach_type}"},
		cfg.IncludeSuffixes,
	)
	assert.Equal(
		t,
		[]string{"lib", "lib/${mach_type}"},
		cfg.LibSuffixes,
	)
	assert.Equal(
		t,
		[]string{
			"lib/pkgconfig",
			"share/pkgconfig",
			"lib/${mach_type}/pkgconfig",
		},
		cfg.PkgConfigSuffixes,
	)
}

func TestApplyDefaults_multilib_suffixes(t *testing.T) {
	t.Parallel()

	cfg := environ.Config{
		Folder: "/work/myenv",
		Variables: map[string]string{
			"mach_type": "x86_64-linux-gnu",
			"mach_x32":  "x32",
			"mach_32":   "i386",
			"mach_64":   "amd64",
		},
	}
	cfg.ApplyDefaults()

	assert.Equal(
		t,
		[]string{
			"lib",
			"lib/${mach_type}",
			"libx32",
			"lib32",
			"lib64",
		},
		cfg.LibSuffixes,
	)
}

func TestApplyDefaults_keeps_explicit_prompt_and_root(t *testing.T) {
	t.Parallel()

	cfg := environ.Config{
		Folder: "/work/myenv",
		Prompt: "dev> ",
		Root:   "/somewhere/else",
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "dev> ", cfg.Prompt)
	assert.Equal(t, "/somewhere/else", cfg.Root)
}

func TestApplyDefaults_prompt_without_slash(t *testing.T) {
	t.Parallel()

	cfg := environ.Config{Folder: "myenv"}
	cfg.ApplyDefaults()

	assert.Equal(t, "(myenv) ", cfg.Prompt)
}

func TestApplyDefaults_user_suffixes_stay_first(t *testing.T) {
	t.Parallel()

	cfg := environ.Config{
		Folder:       "/work/myenv",
		ExecSuffixes: []string{"tools/bin"},
	}
	cfg.ApplyDefaults()

	assert.Equal(
		t,
		[]string{"tools/bin", "bin"},
		cfg.ExecSuffixes,
	)
}

func TestMerge_scalars_replace_when_set(t *testing.T) {
	t.Parallel()

	cfg := environ.Config{
		Folder: "/base",
		Root:   "/base/root",
		Prompt: "base> ",
	}

	cfg.Merge(&environ.Config{Prompt: "over> "})

	assert.Equal(t, "/base", cfg.Folder)
	assert.Equal(t, "/base/root", cfg.Root)
	assert.Equal(t, "over> ", cfg.Prompt)
}

func TestMerge_maps_overlay_wins(t *testing.T) {
	t.Parallel()

	cfg := environ.Config{
		Variables: map[string]string{
			"A": "base",
			"B": "base",
		},
	}

	cfg.Merge(&environ.Config{
		Variables: map[string]string{
			"B": "over",
			"C": "over",
		},
		Exports: map[string]string{"CC": "gcc"},
	})

	assert.Equal(
		t,
		map[string]string{
			"A": "base",
			"B": "over",
			"C": "over",
		},
		cfg.Variables,
	)
	assert.Equal(
		t,
		map[string]string{"CC": "gcc"},
		cfg.Exports,
	)
}

func TestMerge_suffixes_push_to_front(t *testing.T) {
	t.Parallel()

	cfg := environ.Config{
		ExecSuffixes: []string{"bin"},
	}

	cfg.Merge(&environ.Config{
		ExecSuffixes: []string{"first", "second"},
	})

	// Each overlay suffix lands at the front, so the
	// last one given ends up first.
	assert.Equal(
		t,
		[]string{"second", "first", "bin"},
		cfg.ExecSuffixes,
	)
}

func TestMerge_into_zero_config(t *testing.T) {
	t.Parallel()

	var cfg environ.Config

	cfg.Merge(&environ.Config{
		Folder:    "/env",
		Variables: map[string]string{"K": "v"},
	})

	assert.Equal(t, "/env", cfg.Folder)
	assert.Equal(
		t, map[string]string{"K": "v"}, cfg.Variables,
	)
}
