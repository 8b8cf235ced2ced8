package simm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEnumerations_RoundTrip(t *testing.T) {
	for _, rc := range RiskClasses() {
		if got, err := ParseRiskClass(rc.String()); err != nil || got != rc {
			t.Errorf("ParseRiskClass(%q) = %v, %v", rc, got, err)
		}
	}
	for _, mt := range MarginTypes() {
		if got, err := ParseMarginType(mt.String()); err != nil || got != mt {
			t.Errorf("ParseMarginType(%q) = %v, %v", mt, got, err)
		}
	}
	for _, pc := range ProductClasses() {
		if got, err := ParseProductClass(pc.String()); err != nil || got != pc {
			t.Errorf("ParseProductClass(%q) = %v, %v", pc, got, err)
		}
	}
	for _, sc := range SubCurves() {
		if got, err := ParseSubCurve(sc.String()); err != nil || got != sc {
			t.Errorf("ParseSubCurve(%q) = %v, %v", sc, got, err)
		}
	}
}

func TestEnumerations_Unknown(t *testing.T) {
	if RiskClass(42).String() != "unknown" || MarginType(-1).String() != "unknown" {
		t.Error("out of range enumerations should print as unknown")
	}
	if _, err := ParseSubCurve("libor3m"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("ParseSubCurve should be case sensitive, got %v", err)
	}

	var rc RiskClass
	err := json.Unmarshal([]byte(`"RATES"`), &rc)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("json.Unmarshal error = %v, want a configuration error", err)
	}
}

func TestOptional(t *testing.T) {
	var zero Optional[string]
	if zero.IsPresent() || zero != None[string]() {
		t.Error("the zero value must be absent")
	}
	if Some("") == None[string]() {
		t.Error("an empty present value must differ from an absent one")
	}
	if v, ok := Some("x").Get(); !ok || v != "x" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	if got := None[string]().OrElse("d"); got != "d" {
		t.Errorf("OrElse() = %q", got)
	}
	if got := Some(Libor1m).String(); got != "Libor1m" {
		t.Errorf("String() = %q", got)
	}
	if got := None[int]().String(); got != "<none>" {
		t.Errorf("String() = %q", got)
	}
}

func TestQualifier(t *testing.T) {
	tests := []struct {
		q            Qualifier
		wantCurrency string
	}{
		{"USD", "USD"},
		{"EURUSD", "EUR"},
		{"usd", ""},
		{"ABC", ""},
		{"US0378331005", ""},
		{"Freight", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.q), func(t *testing.T) {
			if got := tt.q.Currency(); got != tt.wantCurrency {
				t.Errorf("Currency() = %q, want %q", got, tt.wantCurrency)
			}
		})
	}

	base, quote, err := Qualifier("USDJPY").CurrencyPair()
	if err != nil || base != "USD" || quote != "JPY" {
		t.Errorf("CurrencyPair() = %q, %q, %v", base, quote, err)
	}
	if _, _, err := Qualifier("USD").CurrencyPair(); err == nil {
		t.Error("USD is not a currency pair")
	}
	if isin, err := Qualifier("US0378331005").ISIN(); err != nil || isin != "US0378331005" {
		t.Errorf("ISIN() = %q, %v", isin, err)
	}
	if _, err := Qualifier("US0378331006").ISIN(); err == nil {
		t.Error("wrong check digit should fail")
	}
}
