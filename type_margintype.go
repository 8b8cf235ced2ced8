package simm

// MarginType is the margin component a sensitivity contributes to. CRIF calls
// it the risk type.
type MarginType int

const (
	Delta MarginType = iota
	Vega
	Curvature
	BaseCorr
)

var marginTypeNames = []string{"DELTA", "VEGA", "CURVATURE", "BASECORR"}

// MarginTypes returns all margin types in declaration order.
func MarginTypes() []MarginType { return []MarginType{Delta, Vega, Curvature, BaseCorr} }

func (m MarginType) String() string {
	if m < 0 || int(m) >= len(marginTypeNames) {
		return "unknown"
	}
	return marginTypeNames[m]
}

// ParseMarginType parses the exact name of a margin type, e.g. "VEGA".
func ParseMarginType(s string) (MarginType, error) {
	return parseName("margin type", s, marginTypeNames, MarginTypes())
}

func (m MarginType) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *MarginType) UnmarshalText(text []byte) (err error) {
	*m, err = ParseMarginType(string(text))
	return err
}
