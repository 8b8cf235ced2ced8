package simm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the JSON codec of coordinates and the JSONL persistence of
// sensitivities. Attribute names follow the CRIF column names where one exists.

// jcoordinate is the coordinate as read from json.
type jcoordinate struct {
	RiskClass    *RiskClass    `json:"riskClass"`
	RiskType     *MarginType   `json:"riskType"`
	ProductClass *ProductClass `json:"productClass"`
	Qualifier    string        `json:"qualifier"`
	Bucket       *string       `json:"bucket"`
	Label1       Vertex        `json:"label1"`
	Label2       *SubCurve     `json:"label2"`
}

// MarshalJSON writes the coordinate as a flat object, absent fields are omitted.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("riskClass", c.riskClass)
	w.Append("riskType", c.marginType)
	w.Append("productClass", c.productClass)
	w.Optional("qualifier", c.qualifier)
	if b, ok := c.bucketKey.Get(); ok {
		w.Append("bucket", b)
	}
	w.Optional("label1", c.vertex)
	if sc, ok := c.subCurve.Get(); ok {
		w.Append("label2", sc)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON reads a coordinate written by MarshalJSON. riskClass, riskType
// and productClass are mandatory, unknown attributes are ignored.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var jc jcoordinate
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}
	switch {
	case jc.RiskClass == nil:
		return Configurationf("missing attribute %q", "riskClass")
	case jc.RiskType == nil:
		return Configurationf("missing attribute %q", "riskType")
	case jc.ProductClass == nil:
		return Configurationf("missing attribute %q", "productClass")
	}
	var bucketKey Optional[string]
	if jc.Bucket != nil {
		bucketKey = Some(*jc.Bucket)
	}
	var subCurve Optional[SubCurve]
	if jc.Label2 != nil {
		subCurve = Some(*jc.Label2)
	}
	*c = NewCoordinate(jc.Label1, subCurve, Qualifier(jc.Qualifier), bucketKey, *jc.RiskClass, *jc.RiskType, *jc.ProductClass)
	return nil
}

// EncodeSensitivities writes one line per coordinate, in insertion order: the
// coordinate attributes followed by the currency and the exact amount.
func EncodeSensitivities(w io.Writer, s *Sensitivities) error {
	for _, c := range s.order {
		var line jsonObjectWriter
		line.EmbedFrom(c)
		line.EmbedFrom(s.amounts[c].exact())
		b, err := line.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode sensitivity %v: %w", c, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSensitivities reads a JSONL stream of sensitivities written by
// EncodeSensitivities. Empty lines are skipped. Amounts on the same coordinate
// are added up.
//
// 'currency' is the reporting currency, leave empty to use the first line's.
func DecodeSensitivities(r io.Reader, currency string) (*Sensitivities, error) {
	s, err := NewSensitivities(currency)
	if err != nil {
		return nil, err
	}

	// jamount is the amount part of a line.
	type jamount struct {
		Currency string           `json:"currency"`
		Amount   *decimal.Decimal `json:"amount"`
	}

	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var c Coordinate
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, fmt.Errorf("parse error on line %d: %w", i, err)
		}
		var ja jamount
		if err := json.Unmarshal(line, &ja); err != nil {
			return nil, fmt.Errorf("parse error on line %d: %w", i, err)
		}
		if ja.Amount == nil {
			return nil, fmt.Errorf("parse error on line %d: %w", i, Configurationf("missing attribute %q", "amount"))
		}
		if err := s.Add(c, M(*ja.Amount, ja.Currency)); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read sensitivities: %w", err)
	}
	return s, nil
}
