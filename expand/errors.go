package expand

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminated is returned when the input ends while a "${" is
	// still waiting for its closing brace.
	ErrUnterminated = errors.New("unterminated braced variable")

	// ErrDepthLimit is returned when a reference would nest variable
	// names deeper than MaxDepth.
	ErrDepthLimit = errors.New(
		"recursion depth limit exceeded in variable",
	)
)

// UnknownVariableError is returned when a fully assembled variable name
// has no entry in the mapping.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return "unknown variable: " + e.Name
}

// InvalidStartError is returned when a '$' is followed by a character
// that cannot begin a reference, i.e. anything other than '$', '{', a
// letter, a digit or an underscore.
type InvalidStartError struct {
	Char rune
}

func (e *InvalidStartError) Error() string {
	return fmt.Sprintf("invalid variable start character: %q", e.Char)
}
