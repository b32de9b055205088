package activate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/cenv/activate"
)

func TestFingerprint_returns_sha256(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "activate")
	require.NoError(
		t, os.WriteFile(pa, []byte("hello"), 0o600),
	)

	got, err := activate.Fingerprint(pa)

	require.NoError(t, err)
	// sha256("hello")
	assert.Equal(
		t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		got,
	)
}

func TestFingerprint_nonexistent_file(t *testing.T) {
	t.Parallel()

	got, err := activate.Fingerprint("/nonexistent")

	assert.Empty(t, got)
	assert.NoError(t, err)
}

func TestSeal_then_Unmodified(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "activate")
	require.NoError(
		t, os.WriteFile(pa, []byte("script"), 0o600),
	)

	require.NoError(t, activate.Seal(pa))

	ok, err := activate.Unmodified(pa)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUnmodified_detects_local_edit(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "activate")
	require.NoError(
		t, os.WriteFile(pa, []byte("script"), 0o600),
	)
	require.NoError(t, activate.Seal(pa))

	require.NoError(
		t, os.WriteFile(pa, []byte("edited"), 0o600),
	)

	ok, err := activate.Unmodified(pa)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnmodified_unsealed_script(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "activate")
	require.NoError(
		t, os.WriteFile(pa, []byte("script"), 0o600),
	)

	ok, err := activate.Unmodified(pa)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnmodified_missing_script(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "activate")

	ok, err := activate.Unmodified(pa)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUnmodified_script_deleted_after_seal(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "activate")
	require.NoError(
		t, os.WriteFile(pa, []byte("script"), 0o600),
	)
	require.NoError(t, activate.Seal(pa))
	require.NoError(t, os.Remove(pa))

	ok, err := activate.Unmodified(pa)

	require.NoError(t, err)
	assert.False(t, ok)
}

func FuzzFingerprint(f *testing.F) {
	f.Add([]byte("script"))
	f.Add([]byte(""))
	f.Add([]byte("\x00\xff"))

	f.Fuzz(func(t *testing.T, data []byte) {
		t.Parallel()

		pa := filepath.Join(t.TempDir(), "activate")
		require.NoError(
			t, os.WriteFile(pa, data, 0o600),
		)

		fp, err := activate.Fingerprint(pa)

		require.NoError(t, err)
		assert.Len(t, fp, 64) // sha256 hex is always 64 chars
	})
}
