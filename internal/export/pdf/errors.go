package pdf

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCharacter is matched by every CharsetError
var ErrUnsupportedCharacter = errors.New("unsupported character")

// CharsetError reports text the built-in PDF fonts cannot draw
type CharsetError struct {
	Rune rune
	Text string
}

func (e *CharsetError) Error() string {
	return fmt.Sprintf("unsupported character %q (%U) in %q", e.Rune, e.Rune, e.Text)
}

func (e *CharsetError) Is(target error) bool {
	return target == ErrUnsupportedCharacter
}

// RenderError represents a failure while producing PDF bytes
type RenderError struct {
	Engine  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf render error (%s): %s: %v", e.Engine, e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf render error (%s): %s", e.Engine, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
