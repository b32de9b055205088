// Package expand substitutes shell-style $NAME and ${NAME} variable
// references against a fixed name-to-value mapping. A variable name may
// itself be assembled from nested substitutions ("${A${B}}" resolves B and
// appends its value to the enclosing name); substituted values are opaque
// text and are never re-scanned. "$$" escapes a literal dollar sign.
//
// Expansion is a single forward pass over the input driven by an explicit
// stack of in-progress names, bounded by MaxDepth. A call either returns
// the complete expanded text or one of the package's structured errors;
// partial output is never produced.
package expand
