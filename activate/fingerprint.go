package activate

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
)

// digestSuffix is appended to the script path to name the sidecar
// holding the sealed fingerprint.
const digestSuffix = ".digest"

// Fingerprint returns the hex SHA256 of the script at path. A script
// that does not exist yet has an empty fingerprint.
func Fingerprint(path string) (string, error) {
	const errCtx = "hashing activation script"

	data, err := os.ReadFile(path) //nolint:gosec // path from CLI flags
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}

// Seal writes the current fingerprint of the script at path into its
// sidecar. A sealed script can later prove it was produced by the
// tool and not edited by hand.
func Seal(path string) error {
	const errCtx = "sealing activation script"

	fingerprint, err := Fingerprint(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := os.WriteFile(
		path+digestSuffix, []byte(fingerprint), 0o600,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Unmodified reports whether the script at path still matches the
// fingerprint it was sealed with. A script that was never written,
// with no sidecar next to it, counts as unmodified.
func Unmodified(path string) (bool, error) {
	const errCtx = "comparing script fingerprints"

	current, err := Fingerprint(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	sealed, err := os.ReadFile(path + digestSuffix) //nolint:gosec // path from CLI flags
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	return current == string(sealed), nil
}
