package valuation

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/simm"
	"github.com/etnz/simm/stochastic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedProduct is a product with a constant value and cashflow.
type fixedProduct struct {
	currency string
	value    stochastic.Value
	cashflow stochastic.Value
	calls    *[]string // records valuation order when set.
	name     string
	err      error
}

func (p fixedProduct) Value(t float64, _ Model) (stochastic.Value, error) {
	if p.calls != nil {
		*p.calls = append(*p.calls, p.name)
	}
	return p.value, p.err
}

func (p fixedProduct) Cashflow(t0, t1 float64, _ Model) (stochastic.Value, error) {
	return p.cashflow, p.err
}

func (p fixedProduct) Currency() string { return p.currency }

// listedProduct also reports its underlyings.
type listedProduct struct {
	fixedProduct
	underlyings []string
}

func (p listedProduct) Underlyings() ([]string, error) { return p.underlyings, nil }

// flatValue is a deterministic value that is neither a Scalar nor Paths.
type flatValue float64

func (f flatValue) Scale(w float64) stochastic.Value        { return flatValue(float64(f) * w) }
func (f flatValue) Add(o stochastic.Value) stochastic.Value { return stochastic.Scalar(f).Add(o) }
func (f flatValue) Average() float64                        { return float64(f) }
func (f flatValue) Size() int                               { return 1 }

func usd(value float64) fixedProduct {
	return fixedProduct{currency: "USD", value: stochastic.Scalar(value), cashflow: stochastic.Scalar(value / 10)}
}

func TestPortfolio_Value(t *testing.T) {
	p, err := NewPortfolio([]Product{usd(100), usd(200)}, []float64{0.5, -1})
	require.NoError(t, err)

	v, err := p.Value(0, nil)
	require.NoError(t, err)
	assert.Equal(t, stochastic.Value(stochastic.Scalar(-150)), v)

	m, err := p.ExpectedValue(0, nil)
	require.NoError(t, err)
	assert.True(t, m.Equal(simm.M(-150, "USD")), "got %v", m)
}

func TestPortfolio_ValueOnPaths(t *testing.T) {
	a := fixedProduct{currency: "EUR", value: stochastic.NewPaths(1, 2, 3)}
	b := fixedProduct{currency: "EUR", value: stochastic.NewPaths(10, 20, 30)}
	p, err := NewPortfolioInCurrency("EUR", []Product{a, b}, []float64{2, -0.5})
	require.NoError(t, err)

	v, err := p.Value(1, nil)
	require.NoError(t, err)
	assert.Equal(t, stochastic.Value(stochastic.Paths{-3, -6, -9}), v)
}

func TestPortfolio_ValueMixesRepresentations(t *testing.T) {
	paths := fixedProduct{currency: "USD", value: stochastic.NewPaths(1, 2)}
	flat := fixedProduct{currency: "USD", value: flatValue(3)}
	p, err := NewPortfolio([]Product{paths, flat}, []float64{1, 1})
	require.NoError(t, err)

	v, err := p.Value(0, nil)
	require.NoError(t, err)
	assert.Equal(t, stochastic.Value(stochastic.Paths{4, 5}), v)
}

func TestPortfolio_ExpectedValueNonFinite(t *testing.T) {
	for _, paths := range []stochastic.Paths{{1, math.Inf(1)}, {math.NaN(), 2}} {
		p, err := NewSingleProductPortfolio(fixedProduct{currency: "USD", value: paths}, 1)
		require.NoError(t, err)

		_, err = p.ExpectedValue(0, nil)
		assert.ErrorContains(t, err, "non-finite expected value")
	}
}

func TestPortfolio_Cashflow(t *testing.T) {
	a := fixedProduct{currency: "USD", cashflow: stochastic.Scalar(10)}
	b := fixedProduct{currency: "USD", cashflow: stochastic.NewPaths(4, 8)}
	p, err := NewPortfolio([]Product{a, b}, []float64{1, -0.25})
	require.NoError(t, err)

	cf, err := p.Cashflow(0, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, stochastic.Value(stochastic.Paths{9, 8}), cf)
}

func TestPortfolio_ValuationOrder(t *testing.T) {
	var calls []string
	products := []Product{
		fixedProduct{currency: "USD", value: stochastic.Scalar(1), name: "a", calls: &calls},
		fixedProduct{currency: "USD", value: stochastic.Scalar(2), name: "b", calls: &calls},
		fixedProduct{currency: "USD", value: stochastic.Scalar(3), name: "c", calls: &calls},
	}
	p, err := NewPortfolio(products, []float64{1, 1, 1})
	require.NoError(t, err)

	_, err = p.Value(0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestPortfolio_ValuationErrorIsPropagated(t *testing.T) {
	failure := errors.New("simulation failed")
	p, err := NewPortfolio([]Product{usd(1), fixedProduct{currency: "USD", err: failure}}, []float64{1, 1})
	require.NoError(t, err)

	_, err = p.Value(0, nil)
	assert.Same(t, failure, err)
	_, err = p.Cashflow(0, 1, nil)
	assert.Same(t, failure, err)
	_, err = p.ExpectedValue(0, nil)
	assert.Same(t, failure, err)
}

func TestPortfolio_Construction(t *testing.T) {
	tests := []struct {
		name     string
		currency string // "" to infer it
		products []Product
		weights  []float64
		wantErr  error
	}{
		{
			name:     "explicit currency mismatch",
			currency: "EUR",
			products: []Product{usd(1)},
			weights:  []float64{1},
			wantErr:  simm.ErrConfiguration,
		},
		{
			name:     "unknown currency",
			currency: "XYZ",
			products: []Product{},
			weights:  []float64{},
			wantErr:  simm.ErrConfiguration,
		},
		{
			name:     "weights length mismatch",
			products: []Product{usd(1), usd(2)},
			weights:  []float64{1},
			wantErr:  simm.ErrConfiguration,
		},
		{
			name:     "nil product",
			products: []Product{nil},
			weights:  []float64{1},
			wantErr:  simm.ErrConfiguration,
		},
		{
			name:     "mixed currencies are accepted when inferred",
			products: []Product{usd(1), fixedProduct{currency: "EUR", value: stochastic.Scalar(1)}},
			weights:  []float64{1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.currency != "" {
				_, err = NewPortfolioInCurrency(tt.currency, tt.products, tt.weights)
			} else {
				_, err = NewPortfolio(tt.products, tt.weights)
			}
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPortfolio_Currency(t *testing.T) {
	empty, err := NewPortfolioInCurrency("EUR", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", empty.Currency())

	mixed, err := NewPortfolio([]Product{fixedProduct{currency: "GBP"}, usd(1)}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, "GBP", mixed.Currency())

	single, err := NewSingleProductPortfolio(usd(3), 2)
	require.NoError(t, err)
	assert.Equal(t, "USD", single.Currency())
	assert.Equal(t, []float64{2}, single.Weights())
}

func TestPortfolio_Underlyings(t *testing.T) {
	a := listedProduct{fixedProduct: usd(1), underlyings: []string{"A", "B"}}
	b := listedProduct{fixedProduct: usd(2), underlyings: []string{"B", "C"}}

	t.Run("union", func(t *testing.T) {
		p, err := NewPortfolio([]Product{a, b}, []float64{1, 1})
		require.NoError(t, err)
		got, err := p.Underlyings()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"A", "B", "C"}, got)
	})

	t.Run("nested portfolio", func(t *testing.T) {
		inner, err := NewPortfolio([]Product{a}, []float64{1})
		require.NoError(t, err)
		outer, err := NewPortfolio([]Product{inner, b}, []float64{1, -1})
		require.NoError(t, err)
		got, err := outer.Underlyings()
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, got)
	})

	t.Run("opaque product", func(t *testing.T) {
		p, err := NewPortfolio([]Product{a, usd(2)}, []float64{1, 1})
		require.NoError(t, err)
		_, err = p.Underlyings()
		assert.ErrorIs(t, err, simm.ErrCapability)
	})
}

func TestPortfolio_ValueAtFixingIsUnsupported(t *testing.T) {
	p, err := NewPortfolio([]Product{usd(1)}, []float64{1})
	require.NoError(t, err)
	v, err := p.ValueAtFixing(0, 1, nil)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}

func TestPortfolio_Immutable(t *testing.T) {
	products := []Product{usd(1), usd(2)}
	weights := []float64{1, 2}
	p, err := NewPortfolio(products, weights)
	require.NoError(t, err)

	weights[0] = 100
	p.Weights()[1] = 100
	assert.Equal(t, []float64{1, 2}, p.Weights())
	assert.Len(t, p.Products(), 2)

	q := p.WithInitialLifetime(5)
	assert.Equal(t, 5.0, q.InitialLifetime())
	assert.Equal(t, 0.0, p.InitialLifetime())
}
