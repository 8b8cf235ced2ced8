package simm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// isinRegex checks for the basic structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// currencyCodeRegex checks for the format: 3 uppercase letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// currencyPairRegex checks for the format: 6 uppercase letters (3 for base, 3 for quote).
var currencyPairRegex = regexp.MustCompile(`^[A-Z]{6}$`)

// Qualifier narrows a risk class to a risk factor. It is the CRIF Qualifier
// column and its format depends on the risk class:
//
//   - interest rate and FX delta: the currency, e.g. "USD".
//   - FX vega: a currency pair, the concatenated currencies, e.g. "USDEUR".
//   - equity: the ISIN of the security or a pre-defined index identifier.
//   - commodity: a pre-defined human-readable identifier, e.g. "Freight".
//   - credit: the issuer identifier.
//
// Two qualifiers are equal when their strings are equal.
type Qualifier string

// String implements the fmt.Stringer interface.
func (q Qualifier) String() string { return string(q) }

// Currency returns the ISO 4217 currency code of the qualifier.
//
// A currency code is returned as is, a currency pair returns its base currency.
// Codes unknown to the ISO table and any other format return "".
func (q Qualifier) Currency() string {
	s := string(q)
	if currencyPairRegex.MatchString(s) {
		s = s[:3]
	}
	if !currencyCodeRegex.MatchString(s) || money.GetCurrency(s) == nil {
		return ""
	}
	return s
}

// CurrencyPair validates a 6-character qualifier and extracts the base and quote
// currencies.
func (q Qualifier) CurrencyPair() (base string, quote string, err error) {
	if len(q) != 6 {
		return "", "", fmt.Errorf("invalid length: currency pair must be 6 characters, got %d", len(q))
	}
	if !currencyPairRegex.MatchString(string(q)) {
		return "", "", fmt.Errorf("invalid format: currency pair must be 6 uppercase letters")
	}
	base, quote = string(q)[:3], string(q)[3:]
	if money.GetCurrency(base) == nil {
		return "", "", fmt.Errorf("unknown base currency %q", base)
	}
	if money.GetCurrency(quote) == nil {
		return "", "", fmt.Errorf("unknown quote currency %q", quote)
	}
	return base, quote, nil
}

// ISIN returns the qualifier if it is a validly formatted ISIN.
func (q Qualifier) ISIN() (string, error) {
	if err := ValidateISIN(string(q)); err != nil {
		return "", err
	}
	return string(q), nil
}

// ValidateISIN checks if a string is a validly formatted ISIN.
// It returns nil if valid, or a descriptive error if invalid.
func ValidateISIN(isin string) error {
	if len(isin) != 12 {
		return fmt.Errorf("invalid length: must be 12 characters, got %d", len(isin))
	}
	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}

	// Letters become two digit numbers before the Luhn check.
	var numericStr strings.Builder
	for _, char := range isin[:11] {
		if char >= 'A' && char <= 'Z' {
			numericStr.WriteString(strconv.Itoa(int(char - 'A' + 10)))
		} else {
			numericStr.WriteRune(char)
		}
	}

	sum := 0
	isSecond := true
	digits := numericStr.String()
	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')
		if isSecond {
			digit *= 2
		}
		sum += (digit / 10) + (digit % 10)
		isSecond = !isSecond
	}

	expected := (10 - (sum % 10)) % 10
	actual := int(isin[11] - '0')
	if expected != actual {
		return fmt.Errorf("invalid check digit: expected %d, got %d", expected, actual)
	}
	return nil
}
