package stochastic

// Scalar is a deterministic value.
type Scalar float64

func (s Scalar) Scale(w float64) Value { return s * Scalar(w) }
func (s Scalar) Average() float64      { return float64(s) }
func (s Scalar) Size() int             { return 1 }

// Add returns a Scalar when o is a Scalar, otherwise s is added to every path of o.
func (s Scalar) Add(o Value) Value {
	switch v := o.(type) {
	case Scalar:
		return s + v
	case Paths:
		return v.Add(s)
	default:
		return o.Add(s)
	}
}
