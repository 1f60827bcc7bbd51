// Package currencyutils converts statement amounts between their printed
// form and decimal values.
package currencyutils

import (
	"errors"
	"regexp"
	"strings"

	"fjacquet/extracto/internal/parsererror"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MinorUnits is the number of decimal places kept on every amount.
const MinorUnits = 2

var (
	errEmptyAmount = errors.New("no digits after cleanup")
	errBadDigits   = errors.New("not a plain decimal number")

	plainDecimal = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)
	displayPrint = message.NewPrinter(language.English)
)

// ParseStatementAmount converts a matched amount such as "-$ 1.234,56" into
// a decimal. The statement groups thousands with '.' and separates decimals
// with ','. A '-' at the start of the raw text, or left at the start after
// cleanup, makes the value negative.
func ParseStatementAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.Join(strings.Fields(strings.ReplaceAll(raw, "$", "")), "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	negative := strings.HasPrefix(raw, "-") || strings.HasPrefix(cleaned, "-")
	if negative {
		cleaned = strings.ReplaceAll(cleaned, "-", "")
	}
	cleaned = strings.TrimPrefix(cleaned, "+")

	if cleaned == "" || cleaned == "." {
		return decimal.Zero, amountError(raw, errEmptyAmount)
	}
	if !plainDecimal.MatchString(cleaned) {
		return decimal.Zero, amountError(raw, errBadDigits)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, amountError(raw, err)
	}
	if negative {
		value = value.Neg()
	}
	return value.Round(MinorUnits), nil
}

func amountError(raw string, err error) error {
	return &parsererror.ParseError{Parser: "statement", Field: "amount", Value: raw, Err: err}
}

// FormatStatementAmount renders d for console output, e.g. "$1,234.56" or
// "-$50,000.00".
func FormatStatementAmount(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + displayPrint.Sprintf("%.2f", d.Round(MinorUnits).InexactFloat64())
}
