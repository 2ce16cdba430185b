package pdf

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Options textos comunes a los documentos.
type Options struct {
	Issuer   string // aparece en cabecera, metadatos y pie
	Currency string // símbolo antepuesto a los importes
}

func (o Options) withDefaults() Options {
	if o.Issuer == "" {
		o.Issuer = "SpheneGem Inventory System"
	}
	if o.Currency == "" {
		o.Currency = "$"
	}
	return o
}

// formatter imprime cifras con separador de miles y dos decimales ("1,240.25").
type formatter struct {
	p        *message.Printer
	currency string
}

func newFormatter(currency string) formatter {
	return formatter{p: message.NewPrinter(language.English), currency: currency}
}

// fixed redondea a 2 decimales sin pasar por float64: la parte entera se agrupa
// con x/text mientras quepa en uint64 y los decimales salen de StringFixed.
func (f formatter) fixed(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	digits := r.StringFixed(2)
	whole, frac := digits[:len(digits)-3], digits[len(digits)-2:]

	if n := r.BigInt(); n.IsUint64() {
		whole = f.p.Sprintf("%v", number.Decimal(n.Uint64()))
	} else {
		whole = groupThousands(whole)
	}
	return sign + whole + "." + frac
}

// groupThousands separa con comas una cadena de dígitos (montos fuera de uint64).
func groupThousands(digits string) string {
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func (f formatter) money(d decimal.Decimal) string {
	return f.currency + f.fixed(d)
}
