package simm

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// irDelta is a helper for test to create an interest rate delta coordinate.
func irDelta(tenor Vertex, currency string, bucket Optional[string]) Coordinate {
	return NewCoordinate(tenor, Some(Libor3m), Qualifier(currency), bucket, InterestRate, Delta, RatesFX)
}

// eqDelta is a helper for test to create an equity delta coordinate.
func eqDelta(isin, bucket string) Coordinate {
	return NewCoordinate(NoVertex, None[SubCurve](), Qualifier(isin), Some(bucket), Equity, Delta, EquityProduct)
}
