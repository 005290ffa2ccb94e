package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"templodigital_backend/internals/features/reports/service"
)

func TestBalancePDF(t *testing.T) {
	b := Branding{ChurchName: "Igreja Central"}
	rep := &service.BalanceReport{
		EndDate:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		TotalIncome:  decimal.RequireFromString("500.00"),
		TotalExpense: decimal.RequireFromString("200.00"),
		Cash:         decimal.RequireFromString("300.00"),
		Equity:       decimal.RequireFromString("300.00"),
	}

	pdf := BalancePDF(b, rep)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("gerando PDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("PDF vazio")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("saída não começa com o cabeçalho %PDF")
	}
}

func TestBalancePDFUnreadableLogoDegradesToText(t *testing.T) {
	b := Branding{ChurchName: "Igreja Central", LogoPath: "/caminho/que/nao/existe.png"}
	rep := &service.BalanceReport{
		EndDate:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Cash:         decimal.Zero,
		Equity:       decimal.Zero,
	}

	pdf := BalancePDF(b, rep)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("logo ilegível não pode abortar o documento: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("PDF vazio")
	}
}
