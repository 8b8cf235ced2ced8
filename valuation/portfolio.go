package valuation

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/etnz/simm"
	"github.com/etnz/simm/stochastic"
	"github.com/rs/zerolog/log"
)

// Portfolio is a weighted sum of products:
//
//	value = Σ weights[i] · products[i]
//
// A Portfolio is immutable and is itself a Product.
type Portfolio struct {
	products        []Product
	weights         []float64
	initialLifetime float64
}

// NewSingleProductPortfolio creates a portfolio holding a single weighted product.
func NewSingleProductPortfolio(product Product, weight float64) (*Portfolio, error) {
	return NewPortfolio([]Product{product}, []float64{weight})
}

// NewPortfolio creates a portfolio of weighted products.
//
// The currency of the portfolio is the currency of the first product. Products
// in other currencies are accepted but their values are not converted.
func NewPortfolio(products []Product, weights []float64) (*Portfolio, error) {
	if err := checkProducts(products, weights); err != nil {
		return nil, err
	}
	for i, p := range products {
		if p.Currency() != products[0].Currency() {
			log.Warn().
				Int("product", i).
				Str("currency", p.Currency()).
				Str("portfolio_currency", products[0].Currency()).
				Msg("portfolio mixes currencies, values are not converted")
			break
		}
	}
	return &Portfolio{
		products: slices.Clone(products),
		weights:  slices.Clone(weights),
	}, nil
}

// NewPortfolioInCurrency creates a portfolio of weighted products that must all
// be in 'currency'.
func NewPortfolioInCurrency(currency string, products []Product, weights []float64) (*Portfolio, error) {
	if money.GetCurrency(currency) == nil {
		return nil, simm.Configurationf("unknown portfolio currency %q", currency)
	}
	if err := checkProducts(products, weights); err != nil {
		return nil, err
	}
	for i, p := range products {
		if p.Currency() != currency {
			return nil, simm.Configurationf("product %d is in %s, portfolio is in %s: currency conversion is not supported", i, p.Currency(), currency)
		}
	}
	return &Portfolio{
		products: slices.Clone(products),
		weights:  slices.Clone(weights),
	}, nil
}

func checkProducts(products []Product, weights []float64) error {
	if len(products) != len(weights) {
		return simm.Configurationf("%d products but %d weights", len(products), len(weights))
	}
	for i, p := range products {
		if p == nil {
			return simm.Configurationf("product %d is nil", i)
		}
	}
	return nil
}

// WithInitialLifetime returns a copy of the portfolio carrying 't' as its
// initial lifetime. The lifetime is informative, it is not used in valuation.
func (p *Portfolio) WithInitialLifetime(t float64) *Portfolio {
	q := *p
	q.initialLifetime = t
	return &q
}

// InitialLifetime returns the informative initial lifetime.
func (p *Portfolio) InitialLifetime() float64 { return p.initialLifetime }

// Products returns a copy of the products.
func (p *Portfolio) Products() []Product { return slices.Clone(p.products) }

// Weights returns a copy of the weights.
func (p *Portfolio) Weights() []float64 { return slices.Clone(p.weights) }

// Currency returns the currency of the first product, or "" for an empty portfolio.
func (p *Portfolio) Currency() string {
	if len(p.products) == 0 {
		return ""
	}
	return p.products[0].Currency()
}

// Underlyings returns the sorted union of the underlyings of all products.
//
// Every product must implement UnderlyingReporter.
func (p *Portfolio) Underlyings() ([]string, error) {
	set := make(map[string]struct{})
	for i, product := range p.products {
		r, ok := product.(UnderlyingReporter)
		if !ok {
			return nil, simm.Capabilityf("product %d (%T) cannot be queried for underlyings", i, product)
		}
		names, err := r.Underlyings()
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			set[name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set)), nil
}

// Value returns the weighted sum of the products values at 'evaluationTime'.
//
// Products are valued once each, in order. The first valuation error is
// returned as is.
func (p *Portfolio) Value(evaluationTime float64, model Model) (stochastic.Value, error) {
	values := stochastic.Zero
	for i, product := range p.products {
		v, err := product.Value(evaluationTime, model)
		if err != nil {
			return nil, err
		}
		values = values.Add(v.Scale(p.weights[i]))
	}
	return values, nil
}

// Cashflow returns the weighted sum of the products cashflows between
// 'initialTime' and 'finalTime'.
func (p *Portfolio) Cashflow(initialTime, finalTime float64, model Model) (stochastic.Value, error) {
	cashflows := stochastic.Zero
	for i, product := range p.products {
		cf, err := product.Cashflow(initialTime, finalTime, model)
		if err != nil {
			return nil, err
		}
		cashflows = cashflows.Add(cf.Scale(p.weights[i]))
	}
	return cashflows, nil
}

// ValueAtFixing is not supported yet: it always returns an error wrapping
// errors.ErrUnsupported.
func (p *Portfolio) ValueAtFixing(evaluationTime, fixingTime float64, model Model) (stochastic.Value, error) {
	return nil, fmt.Errorf("portfolio value at fixing time %v: %w", fixingTime, errors.ErrUnsupported)
}

// ExpectedValue returns the average over the paths of Value, in the portfolio currency.
// A NaN or infinite average is an error.
func (p *Portfolio) ExpectedValue(evaluationTime float64, model Model) (simm.Money, error) {
	v, err := p.Value(evaluationTime, model)
	if err != nil {
		return simm.Money{}, err
	}
	avg := v.Average()
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return simm.Money{}, fmt.Errorf("non-finite expected value %v", avg)
	}
	return simm.M(avg, p.Currency()), nil
}
