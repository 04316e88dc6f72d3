// Package money formatea montos para documentos y emails.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format devuelve el monto con separador de miles y 2 decimales: 47200 → "47,200.00".
// La parte entera se agrupa sin pasar por float.
func Format(d decimal.Decimal) string {
	abs := d.Abs().Round(2)
	intPart, frac, _ := strings.Cut(abs.StringFixed(2), ".")

	// Montos fuera de int64 se dejan sin agrupar.
	whole := abs.Truncate(0)
	if n := whole.IntPart(); whole.Equal(decimal.NewFromInt(n)) {
		intPart = printer.Sprintf("%d", n)
	}
	out := intPart + "." + frac
	if d.IsNegative() && !abs.IsZero() {
		out = "-" + out
	}
	return out
}
