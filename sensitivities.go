package simm

import (
	"maps"
	"slices"

	"github.com/Rhymond/go-money"
)

// Sensitivities accumulates amounts under their Coordinate.
//
// All amounts are in a single reporting currency. A Sensitivities is a builder,
// it is not safe for concurrent writers.
type Sensitivities struct {
	currency string
	amounts  map[Coordinate]Money
	order    []Coordinate // insertion order of the coordinates.
}

// NewSensitivities returns an empty table reporting in 'currency'.
// An empty currency is set by the first amount added.
func NewSensitivities(currency string) (*Sensitivities, error) {
	if currency != "" && money.GetCurrency(currency) == nil {
		return nil, Configurationf("unknown currency %q", currency)
	}
	return &Sensitivities{
		currency: currency,
		amounts:  make(map[Coordinate]Money),
	}, nil
}

// Currency returns the reporting currency.
func (s *Sensitivities) Currency() string { return s.currency }

// Len returns the number of distinct coordinates.
func (s *Sensitivities) Len() int { return len(s.order) }

// Add accumulates 'm' under coordinate 'c'.
func (s *Sensitivities) Add(c Coordinate, m Money) error {
	if s.currency == "" {
		if money.GetCurrency(m.Currency()) == nil {
			return Configurationf("unknown currency %q for %v", m.Currency(), c)
		}
		s.currency = m.Currency()
	}
	if m.Currency() != s.currency {
		return Configurationf("sensitivity %v is in %s, expected %s", c, m.Currency(), s.currency)
	}
	prev, exists := s.amounts[c]
	if !exists {
		s.order = append(s.order, c)
		prev = M(0, s.currency)
	}
	s.amounts[c] = prev.Add(m).exact()
	return nil
}

// Amount returns the accumulated amount for 'c', zero if 'c' was never added.
func (s *Sensitivities) Amount(c Coordinate) Money {
	if m, ok := s.amounts[c]; ok {
		return m
	}
	return M(0, s.currency)
}

// Coordinates returns the coordinates in the order they were first added.
func (s *Sensitivities) Coordinates() []Coordinate { return slices.Clone(s.order) }

// NetBySimmBucket nets the amounts of risk class 'rc' per SIMM bucket.
// Coordinates without a bucket are netted under "".
func (s *Sensitivities) NetBySimmBucket(rc RiskClass) map[string]Money {
	return s.netBy(rc, Coordinate.SimmBucket)
}

// NetByCrifBucket nets the amounts of risk class 'rc' per CRIF bucket.
// Coordinates without a bucket are netted under "".
func (s *Sensitivities) NetByCrifBucket(rc RiskClass) map[string]Money {
	return s.netBy(rc, Coordinate.CrifBucket)
}

func (s *Sensitivities) netBy(rc RiskClass, bucket func(Coordinate) Optional[string]) map[string]Money {
	net := make(map[string]Money)
	for _, c := range s.order {
		if c.riskClass != rc {
			continue
		}
		key := bucket(c).OrElse("")
		sum, ok := net[key]
		if !ok {
			sum = M(0, s.currency)
		}
		net[key] = sum.Add(s.amounts[c])
	}
	return net
}

// Buckets returns the keys of a netting result in ascending order.
func Buckets(net map[string]Money) []string {
	return slices.Sorted(maps.Keys(net))
}
