package environ_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/cenv/environ"
)

func TestLoadVarFiles_merges_later_files_over_earlier(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	first := writeTemp(
		t, dir, "base.env",
		"name=dev\nmach_type=x86_64-linux-gnu\n",
	)
	second := writeTemp(
		t, dir, "override.env",
		"name=release\n",
	)

	vars, err := environ.LoadVarFiles(
		[]string{first, second},
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"name":      "release",
		"mach_type": "x86_64-linux-gnu",
	}, vars)
}

func TestLoadVarFiles_splits_on_first_equals(t *testing.T) {
	t.Parallel()

	pa := writeTemp(
		t, t.TempDir(), "vars.env",
		"flags=-O2 -march=native\n",
	)

	vars, err := environ.LoadVarFiles([]string{pa})
	require.NoError(t, err)

	assert.Equal(
		t,
		map[string]string{"flags": "-O2 -march=native"},
		vars,
	)
}

func TestLoadVarFiles_skips_blanks_and_comments(t *testing.T) {
	t.Parallel()

	pa := writeTemp(
		t, t.TempDir(), "vars.env",
		"# build toolchain\n\n  \ncc=gcc\n",
	)

	vars, err := environ.LoadVarFiles([]string{pa})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"cc": "gcc"}, vars)
}

func TestLoadVarFiles_rejects_malformed_line(t *testing.T) {
	t.Parallel()

	pa := writeTemp(
		t, t.TempDir(), "vars.env",
		"cc=gcc\nnot a pair\n",
	)

	_, err := environ.LoadVarFiles([]string{pa})
	require.Error(t, err)
	assert.ErrorContains(t, err, `"not a pair" is not KEY=VALUE`)
}

func TestLoadVarFiles_missing_file(t *testing.T) {
	t.Parallel()

	_, err := environ.LoadVarFiles(
		[]string{"/nonexistent/vars.env"},
	)
	require.Error(t, err)
}

func TestLoadVarFiles_no_files(t *testing.T) {
	t.Parallel()

	vars, err := environ.LoadVarFiles(nil)
	require.NoError(t, err)

	assert.Empty(t, vars)
	assert.NotNil(t, vars)
}
