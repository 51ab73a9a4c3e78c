package diagram

import (
	"errors"
	"fmt"

	"github.com/boxwire/circuitry/coord"
)

// Kind classifies a scanning failure. See ParseError for the carrying type.
type Kind uint8

const (
	// UnexpectedSymbol means the scanner met a glyph not admissible for
	// its current state/direction.
	UnexpectedSymbol Kind = iota
	// Looping means the scanner's iteration cap was exceeded.
	Looping
	// UnexpectedState means an invariant was violated at a well-defined
	// point, such as closing a box without having seen its top-left corner.
	UnexpectedState
	// EndOfInput means the walk stepped off the grid before closing.
	EndOfInput
)

var (
	// ErrUnexpectedSymbol is the sentinel ParseError.Unwrap returns for
	// Kind == UnexpectedSymbol.
	ErrUnexpectedSymbol = errors.New("diagram: unexpected symbol")
	// ErrLooping is the sentinel ParseError.Unwrap returns for Kind == Looping.
	ErrLooping = errors.New("diagram: looping")
	// ErrUnexpectedState is the sentinel ParseError.Unwrap returns for
	// Kind == UnexpectedState.
	ErrUnexpectedState = errors.New("diagram: unexpected state")
	// ErrEndOfInput is the sentinel ParseError.Unwrap returns for
	// Kind == EndOfInput.
	ErrEndOfInput = errors.New("diagram: end of input")
)

// sentinel returns the package-level sentinel error matching k, for Unwrap.
func (k Kind) sentinel() error {
	switch k {
	case UnexpectedSymbol:
		return ErrUnexpectedSymbol
	case Looping:
		return ErrLooping
	case UnexpectedState:
		return ErrUnexpectedState
	case EndOfInput:
		return ErrEndOfInput
	default:
		return nil
	}
}

// String renders a Kind for error messages and test assertions.
func (k Kind) String() string {
	switch k {
	case UnexpectedSymbol:
		return "UnexpectedSymbol"
	case Looping:
		return "Looping"
	case UnexpectedState:
		return "UnexpectedState"
	case EndOfInput:
		return "EndOfInput"
	default:
		return "Unknown"
	}
}

// ParseError is a position-carrying scan failure. It is the error type
// returned by ScanStructural and Scan (Scan also returns the context's own
// error once a WithContext context is done); callers branch on Kind via
// errors.As.
type ParseError struct {
	Kind    Kind
	Pos     coord.Position
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("diagram: %s at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
	}

	return fmt.Sprintf("diagram: %s at %d:%d", e.Kind, e.Pos.Line, e.Pos.Column)
}

// Unwrap exposes the Kind-specific sentinel so callers can match with
// errors.Is(err, diagram.ErrLooping) and friends, instead of branching on
// the Kind field directly.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}
