package simm

import (
	"slices"
	"strings"
)

// Vertex is a tenor point on the SIMM maturity ladder.
//
// Vertices are ordered by time length. The zero value NoVertex sorts first and
// stands for risk factors that have no tenor (equity delta, FX delta...).
type Vertex int

const (
	NoVertex Vertex = iota
	V2W
	V1M
	V3M
	V6M
	V1Y
	V2Y
	V3Y
	V5Y
	V10Y
	V15Y
	V20Y
	V30Y
)

var vertexNames = []string{"", "2W", "1M", "3M", "6M", "1Y", "2Y", "3Y", "5Y", "10Y", "15Y", "20Y", "30Y"}

// year fraction of each vertex, in the same order as vertexNames.
var vertexYears = []float64{0, 14.0 / 365.0, 1.0 / 12.0, 3.0 / 12.0, 6.0 / 12.0, 1, 2, 3, 5, 10, 15, 20, 30}

// Vertices returns the maturity ladder in ascending order, without NoVertex.
func Vertices() []Vertex {
	return []Vertex{V2W, V1M, V3M, V6M, V1Y, V2Y, V3Y, V5Y, V10Y, V15Y, V20Y, V30Y}
}

// String returns the canonical tenor, e.g. "10Y".
func (v Vertex) String() string {
	if v < 0 || int(v) >= len(vertexNames) {
		return "unknown"
	}
	return vertexNames[v]
}

// YearFraction returns the time length of the vertex in years.
func (v Vertex) YearFraction() float64 {
	if v < 0 || int(v) >= len(vertexYears) {
		return 0
	}
	return vertexYears[v]
}

// Compare returns -1, 0 or +1 depending on whether v is shorter, equal or longer than w.
func (v Vertex) Compare(w Vertex) int {
	switch {
	case v < w:
		return -1
	case v > w:
		return 1
	default:
		return 0
	}
}

// Before reports whether v is a shorter tenor than w.
func (v Vertex) Before(w Vertex) bool { return v < w }

// ParseVertex parses a tenor string.
//
// Both the canonical form ("2W", "10Y") and the lower case CRIF Label1 form
// ("2w", "10y") are accepted. An empty string is NoVertex.
func ParseVertex(s string) (Vertex, error) {
	tenor := strings.ToUpper(strings.TrimSpace(s))
	if tenor == "" {
		return NoVertex, nil
	}
	if i := slices.Index(vertexNames, tenor); i > 0 {
		return Vertex(i), nil
	}
	return NoVertex, Configurationf("unknown tenor %q, expected one of %s", s, strings.Join(vertexNames[1:], ", "))
}

func (v Vertex) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Vertex) UnmarshalText(text []byte) (err error) {
	*v, err = ParseVertex(string(text))
	return err
}
