// Package currency renders amounts for display.
//
// Formatting is the only place amounts are rounded. Calculations keep full
// float64 precision and must never be fed a formatted value.
package currency

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCode is the currency the business invoices in.
const DefaultCode = "AED"

// Formatter renders amounts as "<CODE> 1,234.56".
type Formatter struct {
	code    string
	places  int32
	printer *message.Printer
}

var defaultFormatter = NewFormatter(DefaultCode)

// NewFormatter returns a Formatter for an ISO 4217 code with two minor-unit
// digits and English digit grouping. An empty code falls back to DefaultCode.
func NewFormatter(code string) *Formatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCode
	}
	return &Formatter{
		code:    code,
		places:  2,
		printer: message.NewPrinter(language.English),
	}
}

// Code returns the currency code.
func (f *Formatter) Code() string {
	return f.code
}

// Format renders amount rounded half away from zero to the minor unit.
// Negative amounts are prefixed with "-"; NaN and infinities are rendered
// symbolically rather than as numbers.
func (f *Formatter) Format(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return f.code + " NaN"
	case math.IsInf(amount, 1):
		return f.code + " ∞"
	case math.IsInf(amount, -1):
		return "-" + f.code + " ∞"
	}

	d := decimal.NewFromFloat(amount).Round(f.places)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	digits := f.printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(int(f.places))))
	return sign + f.code + " " + digits
}

// Format renders amount in the default currency.
func Format(amount float64) string {
	return defaultFormatter.Format(amount)
}
