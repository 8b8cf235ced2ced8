package simm

// SubCurve distinguishes the sub-curves of an interest-rate yield curve. It is
// the CRIF Label2 column, and is only meaningful for interest-rate risk.
type SubCurve int

const (
	OIS SubCurve = iota
	Libor1m
	Libor3m
	Libor6m
	Libor12m
	Prime
	Municipal
)

var subCurveNames = []string{"OIS", "Libor1m", "Libor3m", "Libor6m", "Libor12m", "Prime", "Municipal"}

// SubCurves returns all sub-curves in declaration order.
func SubCurves() []SubCurve {
	return []SubCurve{OIS, Libor1m, Libor3m, Libor6m, Libor12m, Prime, Municipal}
}

func (s SubCurve) String() string {
	if s < 0 || int(s) >= len(subCurveNames) {
		return "unknown"
	}
	return subCurveNames[s]
}

// ParseSubCurve parses the exact name of a sub-curve, e.g. "Libor3m".
func ParseSubCurve(s string) (SubCurve, error) {
	return parseName("sub-curve", s, subCurveNames, SubCurves())
}

func (s SubCurve) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SubCurve) UnmarshalText(text []byte) (err error) {
	*s, err = ParseSubCurve(string(text))
	return err
}
