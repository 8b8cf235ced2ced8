package simm

// ProductClass is the SIMM product class a trade is assigned to.
type ProductClass int

const (
	RatesFX ProductClass = iota
	Credit
	EquityProduct
	CommodityProduct
)

var productClassNames = []string{"RATES_FX", "CREDIT", "EQUITY", "COMMODITY"}

// ProductClasses returns all product classes in declaration order.
func ProductClasses() []ProductClass {
	return []ProductClass{RatesFX, Credit, EquityProduct, CommodityProduct}
}

func (p ProductClass) String() string {
	if p < 0 || int(p) >= len(productClassNames) {
		return "unknown"
	}
	return productClassNames[p]
}

// ParseProductClass parses the exact name of a product class, e.g. "RATES_FX".
func ParseProductClass(s string) (ProductClass, error) {
	return parseName("product class", s, productClassNames, ProductClasses())
}

func (p ProductClass) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *ProductClass) UnmarshalText(text []byte) (err error) {
	*p, err = ParseProductClass(string(text))
	return err
}
