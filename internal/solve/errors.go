package solve

import "errors"

// Common errors.
var (
	ErrNoConvergence     = errors.New("solver did not converge within the iteration limit")
	ErrSingularJacobian  = errors.New("jacobian is singular at the current iterate")
	ErrDimensionMismatch = errors.New("system size does not match the number of unknowns")
)
