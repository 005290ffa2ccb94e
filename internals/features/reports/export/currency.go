package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatBRL imprime no padrão brasileiro: R$ 1.234,50
func FormatBRL(v decimal.Decimal) string {
	neg := v.IsNegative()
	s := v.Abs().StringFixed(2)

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDateBR imprime datas como dd/mm/aaaa.
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}
