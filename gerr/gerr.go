// Package gerr defines the error taxonomy shared by the constraint,
// polynomial, and groth16 packages.
//
// Every failure raised by this module carries a Kind drawn from a small,
// closed set and an ordered chain of contextual messages, one per call frame
// that re-wrapped the error on its way to the caller. This mirrors the
// sentinel-error-plus-fmt.Errorf("%w: ...") idiom used across the
// constraint-system packages, generalized into one reusable type.
package gerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the semantic category of a failure.
type Kind string

const (
	ShapeMismatch            Kind = "ShapeMismatch"
	WidthMismatch             Kind = "WidthMismatch"
	DuplicateAbscissa         Kind = "DuplicateAbscissa"
	InsufficientSrs           Kind = "InsufficientSrs"
	WitnessUnsatisfiable      Kind = "WitnessUnsatisfiable"
	ZeroSampled               Kind = "ZeroSampled"
	PublicInputCountMismatch  Kind = "PublicInputCountMismatch"
	VerificationFailed        Kind = "VerificationFailed"
	BackendError              Kind = "BackendError"
	RngFailure                Kind = "RngFailure"
)

// Error is the concrete error type raised by this module. It carries a Kind
// and the ordered sequence of operation names that were in progress as the
// error propagated, outermost last.
type Error struct {
	Kind    Kind
	context []string
	cause   error
}

// New creates an Error of the given kind with a single contextual message.
func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, context: []string{op}}
}

// Wrap attaches op to err's context chain, preserving its Kind if err is (or
// wraps) a *Error, or creating a BackendError-kinded wrapper otherwise — the
// backend is the only source of errors this module does not itself classify.
func Wrap(err error, op string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return &Error{Kind: e.Kind, context: append(append([]string{}, e.context...), op), cause: e.cause}
	}
	return &Error{Kind: BackendError, context: []string{op}, cause: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	for i := len(e.context) - 1; i >= 0; i-- {
		b.WriteString(": ")
		b.WriteString(e.context[i])
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %s", e.cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the same Kind as e, letting callers write
// errors.Is(err, gerr.New(gerr.ShapeMismatch, "")) to classify a failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Of reports whether err is a *Error of the given Kind.
func Of(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
