package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"1234.5", "R$ 1.234,50"},
		{"1000000", "R$ 1.000.000,00"},
		{"999.99", "R$ 999,99"},
		{"-42.1", "-R$ 42,10"},
		{"0.05", "R$ 0,05"},
	}
	for _, tc := range cases {
		v := decimal.RequireFromString(tc.in)
		if got := FormatBRL(v); got != tc.want {
			t.Errorf("FormatBRL(%s) = %q, esperado %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDateBR(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDateBR(d); got != "05/03/2024" {
		t.Errorf("FormatDateBR = %q, esperado 05/03/2024", got)
	}
}
