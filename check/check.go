// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package check provides domain-validation helpers for differentiable
// primitives.
//
// Custom primitives registered through ad.Context.Primitive are expected to
// validate their arguments here before constructing any node; the AD engine
// itself performs no numeric-domain checks.
package check

import "github.com/tapir-ml/tapir/internal/check"

// DomainError reports an argument outside a primitive's domain.
type DomainError = check.DomainError

// NotNaN returns a DomainError if x is NaN.
func NotNaN(function, name string, x float64) error { return check.NotNaN(function, name, x) }

// Finite returns a DomainError unless x is finite.
func Finite(function, name string, x float64) error { return check.Finite(function, name, x) }

// Positive returns a DomainError unless x > 0.
func Positive(function, name string, x float64) error { return check.Positive(function, name, x) }

// Nonnegative returns a DomainError unless x >= 0.
func Nonnegative(function, name string, x float64) error {
	return check.Nonnegative(function, name, x)
}

// PositiveFinite returns a DomainError unless x is positive and finite.
func PositiveFinite(function, name string, x float64) error {
	return check.PositiveFinite(function, name, x)
}

// GreaterThan returns a DomainError unless x > low.
func GreaterThan(function, name string, x, low float64) error {
	return check.GreaterThan(function, name, x, low)
}

// NonzeroSize returns an error unless n > 0.
func NonzeroSize(function, name string, n int) error {
	return check.NonzeroSize(function, name, n)
}
