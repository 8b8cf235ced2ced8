// Package stochastic provides the values produced by valuations under a
// simulation model: a deterministic Scalar, or Paths holding one realisation
// per simulation path.
//
// Values are immutable, operations return new values.
package stochastic

// Value is a random variable supporting the linear operations needed to
// combine valuations.
type Value interface {
	// Scale returns the value multiplied by w.
	Scale(w float64) Value
	// Add returns the sum of the value and o.
	Add(o Value) Value
	// Average returns the expectation of the value over its paths.
	Average() float64
	// Size returns the number of paths, 1 for a deterministic value.
	Size() int
}

// Zero is the additive identity.
var Zero Value = Scalar(0)
