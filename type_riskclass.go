package simm

// RiskClass is the SIMM risk class of a sensitivity.
type RiskClass int

const (
	InterestRate RiskClass = iota
	CreditQualifying
	CreditNonQualifying
	Equity
	Commodity
	FX
)

var riskClassNames = []string{"INTEREST_RATE", "CREDIT_QUALIFYING", "CREDIT_NON_QUALIFYING", "EQUITY", "COMMODITY", "FX"}

// RiskClasses returns all risk classes in declaration order.
func RiskClasses() []RiskClass {
	return []RiskClass{InterestRate, CreditQualifying, CreditNonQualifying, Equity, Commodity, FX}
}

func (r RiskClass) String() string {
	if r < 0 || int(r) >= len(riskClassNames) {
		return "unknown"
	}
	return riskClassNames[r]
}

// ParseRiskClass parses the exact name of a risk class, e.g. "INTEREST_RATE".
func ParseRiskClass(s string) (RiskClass, error) {
	return parseName("risk class", s, riskClassNames, RiskClasses())
}

func (r RiskClass) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *RiskClass) UnmarshalText(text []byte) (err error) {
	*r, err = ParseRiskClass(string(text))
	return err
}
