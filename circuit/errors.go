package circuit

import (
	"errors"
	"fmt"

	"github.com/boxwire/circuitry/coord"
)

// ErrorKind classifies a circuit-building or evaluation failure.
type ErrorKind uint8

const (
	// LooseWire means a wire segment terminates at neither a component
	// pin, another wire, nor an outer port.
	LooseWire ErrorKind = iota
	// UnknownFactory means a box's label has no entry in the factory
	// table.
	UnknownFactory
	// ArityMismatch means a box's drawn pin count could not be
	// reconciled with its label's instantiated component.
	ArityMismatch
	// MissingLabel means a box encloses no text node to name it.
	MissingLabel
	// OscillationSuspected means the evaluator's dirty worklist did not
	// settle within its iteration cap.
	OscillationSuspected
)

var (
	// ErrLooseWire is the sentinel CompileError.Unwrap returns for
	// Kind == LooseWire.
	ErrLooseWire = errors.New("circuit: loose wire")
	// ErrUnknownFactory is the sentinel CompileError.Unwrap returns for
	// Kind == UnknownFactory.
	ErrUnknownFactory = errors.New("circuit: unknown factory")
	// ErrArityMismatch is the sentinel CompileError.Unwrap returns for
	// Kind == ArityMismatch.
	ErrArityMismatch = errors.New("circuit: arity mismatch")
	// ErrMissingLabel is the sentinel CompileError.Unwrap returns for
	// Kind == MissingLabel.
	ErrMissingLabel = errors.New("circuit: missing label")
	// ErrOscillationSuspected is the sentinel CompileError.Unwrap returns
	// for Kind == OscillationSuspected.
	ErrOscillationSuspected = errors.New("circuit: oscillation suspected")
)

// sentinel returns the package-level sentinel error matching k, for Unwrap.
func (k ErrorKind) sentinel() error {
	switch k {
	case LooseWire:
		return ErrLooseWire
	case UnknownFactory:
		return ErrUnknownFactory
	case ArityMismatch:
		return ErrArityMismatch
	case MissingLabel:
		return ErrMissingLabel
	case OscillationSuspected:
		return ErrOscillationSuspected
	default:
		return nil
	}
}

// String renders an ErrorKind for error messages and test assertions.
func (k ErrorKind) String() string {
	switch k {
	case LooseWire:
		return "LooseWire"
	case UnknownFactory:
		return "UnknownFactory"
	case ArityMismatch:
		return "ArityMismatch"
	case MissingLabel:
		return "MissingLabel"
	case OscillationSuspected:
		return "OscillationSuspected"
	default:
		return "Unknown"
	}
}

// CompileError is a position-carrying circuit failure returned by Build,
// Builder.Build and CompiledCircuit.Eval.
type CompileError struct {
	Kind    ErrorKind
	Pos     coord.Position
	Message string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("circuit: %s at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
	}

	return fmt.Sprintf("circuit: %s at %d:%d", e.Kind, e.Pos.Line, e.Pos.Column)
}

// Unwrap exposes the Kind-specific sentinel so callers can match with
// errors.Is(err, circuit.ErrLooseWire) and friends, instead of branching on
// the Kind field directly.
func (e *CompileError) Unwrap() error {
	return e.Kind.sentinel()
}
