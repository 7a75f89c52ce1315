// Package check provides the domain-validation helpers used by
// differentiable primitives.
//
// The AD engine never validates numeric domains itself: by contract, a
// primitive checks its arguments here first and only constructs a node once
// they are known well-formed. A failed check therefore always happens before
// anything is recorded on the tape.
package check

import (
	"fmt"
	"math"
)

// DomainError reports an argument outside a primitive's domain.
type DomainError struct {
	Function string  // primitive that rejected the argument
	Name     string  // argument name
	Value    float64 // offending value
	Cond     string  // condition that was violated, e.g. "positive and finite"
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s is %g, but must be %s", e.Function, e.Name, e.Value, e.Cond)
}

// NotNaN returns a DomainError if x is NaN.
func NotNaN(function, name string, x float64) error {
	if math.IsNaN(x) {
		return &DomainError{Function: function, Name: name, Value: x, Cond: "not NaN"}
	}
	return nil
}

// Finite returns a DomainError unless x is finite (not NaN, not ±Inf).
func Finite(function, name string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return &DomainError{Function: function, Name: name, Value: x, Cond: "finite"}
	}
	return nil
}

// Positive returns a DomainError unless x > 0. NaN fails.
func Positive(function, name string, x float64) error {
	if !(x > 0) {
		return &DomainError{Function: function, Name: name, Value: x, Cond: "positive"}
	}
	return nil
}

// Nonnegative returns a DomainError unless x >= 0. NaN fails.
func Nonnegative(function, name string, x float64) error {
	if !(x >= 0) {
		return &DomainError{Function: function, Name: name, Value: x, Cond: "nonnegative"}
	}
	return nil
}

// PositiveFinite returns a DomainError unless x is both positive and finite.
func PositiveFinite(function, name string, x float64) error {
	if !(x > 0) || math.IsInf(x, 1) {
		return &DomainError{Function: function, Name: name, Value: x, Cond: "positive and finite"}
	}
	return nil
}

// GreaterThan returns a DomainError unless x > low. NaN fails.
func GreaterThan(function, name string, x, low float64) error {
	if !(x > low) {
		return &DomainError{Function: function, Name: name, Value: x, Cond: fmt.Sprintf("greater than %g", low)}
	}
	return nil
}

// NonzeroSize returns an error unless n > 0. Used by aggregate primitives
// that reduce over a sequence of operands.
func NonzeroSize(function, name string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: %s has size %d, but must have a nonzero size", function, name, n)
	}
	return nil
}
