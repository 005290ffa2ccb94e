package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"templodigital_backend/internals/features/reports/service"
)

func TestMonthlyMovementXLSX(t *testing.T) {
	b := Branding{ChurchName: "Igreja Central"}
	mov := &service.MonthlyMovement{
		Month: 3,
		Year:  2024,
		Lines: []service.MovementLine{
			{
				Date:        time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
				Description: "Dízimo da Ana",
				Category:    "Dízimos",
				Kind:        service.KindIncome,
				Amount:      decimal.RequireFromString("100.00"),
			},
		},
		TotalIncome:  decimal.RequireFromString("100.00"),
		TotalExpense: decimal.RequireFromString("40.00"),
		Balance:      decimal.RequireFromString("60.00"),
	}

	f, err := MonthlyMovementXLSX(b, mov)
	if err != nil {
		t.Fatalf("MonthlyMovementXLSX: %v", err)
	}
	defer f.Close()

	name, err := f.GetCellValue(sheetName, "A1")
	if err != nil {
		t.Fatalf("lendo A1: %v", err)
	}
	if name != "Igreja Central" {
		t.Errorf("A1 = %q, esperado nome da igreja", name)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("lendo linhas: %v", err)
	}
	foundLine := false
	foundBalance := false
	for _, row := range rows {
		for _, cellVal := range row {
			if cellVal == "Dízimo da Ana" {
				foundLine = true
			}
			if cellVal == "Saldo" {
				foundBalance = true
			}
		}
	}
	if !foundLine {
		t.Error("linha do lançamento não apareceu na planilha")
	}
	if !foundBalance {
		t.Error("linha de saldo não apareceu na planilha")
	}

	if _, err := f.WriteToBuffer(); err != nil {
		t.Fatalf("serializando planilha: %v", err)
	}
}

func TestContributionXLSXHasTwelveMonthColumns(t *testing.T) {
	b := Branding{ChurchName: "Igreja Central"}
	rep := &service.ContributionReport{Year: 2024, GrandTotal: decimal.Zero}

	f, err := ContributionXLSX(b, rep)
	if err != nil {
		t.Fatalf("ContributionXLSX: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("lendo linhas: %v", err)
	}
	for _, row := range rows {
		if len(row) > 0 && row[0] == "Membro" {
			// Membro + 12 meses + Total
			if len(row) != 14 {
				t.Errorf("cabeçalho com %d colunas, esperado 14", len(row))
			}
			return
		}
	}
	t.Error("cabeçalho da matriz não encontrado")
}
