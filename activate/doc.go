// Package activate generates shell activation scripts for an
// environment definition. A generated script is sourced with the
// shell's . command: it saves the caller's prompt and search-path
// variables, layers the environment's entries on top, and defines a
// deactivate function restoring everything it touched.
//
// Each script carries a machine-readable copy of its definition in a
// marker-delimited comment block, and a sidecar fingerprint file
// records the script bytes as written so later runs can detect local
// edits before overwriting.
package activate
