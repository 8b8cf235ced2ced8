// Package valuation combines priced products under a simulation model.
//
// Products and models are collaborators: this package only relies on the
// Product capability set and passes the Model through untouched.
package valuation

import "github.com/etnz/simm/stochastic"

// Model is the simulation model products are valued with. It is opaque to
// this package and handed unmodified to every product.
type Model any

// Product is a valuable product.
type Product interface {
	// Value returns the value of the product at 'evaluationTime'. Cashflows
	// strictly prior to evaluationTime are not included.
	Value(evaluationTime float64, model Model) (stochastic.Value, error)
	// Cashflow returns the cashflows paid between initialTime and finalTime.
	Cashflow(initialTime, finalTime float64, model Model) (stochastic.Value, error)
	// Currency returns the ISO code of the currency the product is valued in.
	Currency() string
}

// UnderlyingReporter is implemented by products able to list the identifiers
// of their underlyings.
type UnderlyingReporter interface {
	Underlyings() ([]string, error)
}
