package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBuildMonthlyMovement(t *testing.T) {
	db := newTestDB(t)
	dizimos := mustCategory(t, db, "Dízimos", "entrada")
	luz := mustCategory(t, db, "Energia Elétrica", "saida")

	mustIncome(t, db, day(2024, time.March, 10), "100.00", dizimos.CategoryID, nil)
	mustExpense(t, db, day(2024, time.March, 5), "40.00", luz.CategoryID)
	// fora do mês, não pode entrar na conta
	mustIncome(t, db, day(2024, time.April, 1), "999.00", dizimos.CategoryID, nil)

	mov, err := BuildMonthlyMovement(db, 3, 2024)
	if err != nil {
		t.Fatalf("BuildMonthlyMovement: %v", err)
	}
	if got := mov.TotalIncome.StringFixed(2); got != "100.00" {
		t.Errorf("TotalIncome = %s, esperado 100.00", got)
	}
	if got := mov.TotalExpense.StringFixed(2); got != "40.00" {
		t.Errorf("TotalExpense = %s, esperado 40.00", got)
	}
	if got := mov.Balance.StringFixed(2); got != "60.00" {
		t.Errorf("Balance = %s, esperado 60.00", got)
	}
	if len(mov.Lines) != 2 {
		t.Fatalf("Lines = %d, esperado 2", len(mov.Lines))
	}
	// ordem cronológica: saída do dia 5 antes da entrada do dia 10
	if mov.Lines[0].Kind != KindExpense || mov.Lines[1].Kind != KindIncome {
		t.Errorf("ordem cronológica errada: %s, %s", mov.Lines[0].Kind, mov.Lines[1].Kind)
	}
}

func TestBuildMonthlyMovementEmptyMonth(t *testing.T) {
	db := newTestDB(t)

	mov, err := BuildMonthlyMovement(db, 7, 2030)
	if err != nil {
		t.Fatalf("BuildMonthlyMovement: %v", err)
	}
	if !mov.TotalIncome.IsZero() || !mov.TotalExpense.IsZero() || !mov.Balance.IsZero() {
		t.Errorf("mês vazio deve zerar tudo: %+v", mov)
	}
	if len(mov.Lines) != 0 {
		t.Errorf("mês vazio não deve ter linhas: %d", len(mov.Lines))
	}
}

func TestBuildDRE(t *testing.T) {
	db := newTestDB(t)
	dizimos := mustCategory(t, db, "Dízimos", "entrada")
	ofertas := mustCategory(t, db, "Ofertas", "entrada")
	luz := mustCategory(t, db, "Energia Elétrica", "saida")

	mustIncome(t, db, day(2024, time.January, 7), "300.00", dizimos.CategoryID, nil)
	mustIncome(t, db, day(2024, time.June, 2), "200.00", dizimos.CategoryID, nil)
	mustIncome(t, db, day(2024, time.February, 14), "150.00", ofertas.CategoryID, nil)
	mustExpense(t, db, day(2024, time.March, 20), "120.00", luz.CategoryID)
	// categoria inexistente cai em "Sem Categoria"
	mustExpense(t, db, day(2024, time.May, 1), "30.00", uuid.New())

	rep, err := BuildDRE(db, 2024)
	if err != nil {
		t.Fatalf("BuildDRE: %v", err)
	}
	if got := rep.TotalRevenue.StringFixed(2); got != "650.00" {
		t.Errorf("TotalRevenue = %s, esperado 650.00", got)
	}
	if got := rep.TotalExpenditure.StringFixed(2); got != "150.00" {
		t.Errorf("TotalExpenditure = %s, esperado 150.00", got)
	}
	if got := rep.NetResult.StringFixed(2); got != "500.00" {
		t.Errorf("NetResult = %s, esperado 500.00", got)
	}

	// receitas em ordem decrescente: Dízimos (500) antes de Ofertas (150)
	if len(rep.Revenues) != 2 {
		t.Fatalf("Revenues = %d, esperado 2", len(rep.Revenues))
	}
	if rep.Revenues[0].Category != "Dízimos" || rep.Revenues[0].Total.StringFixed(2) != "500.00" {
		t.Errorf("Revenues[0] = %+v", rep.Revenues[0])
	}
	if rep.Revenues[1].Category != "Ofertas" {
		t.Errorf("Revenues[1] = %+v", rep.Revenues[1])
	}

	foundFallback := false
	for _, s := range rep.Expenditures {
		if s.Category == "Sem Categoria" && s.Total.StringFixed(2) == "30.00" {
			foundFallback = true
		}
	}
	if !foundFallback {
		t.Errorf("lançamento sem categoria deveria virar 'Sem Categoria': %+v", rep.Expenditures)
	}
}

func TestBuildBalance(t *testing.T) {
	db := newTestDB(t)
	dizimos := mustCategory(t, db, "Dízimos", "entrada")
	luz := mustCategory(t, db, "Energia Elétrica", "saida")

	mustIncome(t, db, day(2024, time.January, 10), "500.00", dizimos.CategoryID, nil)
	mustExpense(t, db, day(2024, time.February, 15), "200.00", luz.CategoryID)
	// depois do corte, fica fora
	mustIncome(t, db, day(2024, time.April, 1), "999.00", dizimos.CategoryID, nil)

	rep, err := BuildBalance(db, day(2024, time.March, 1))
	if err != nil {
		t.Fatalf("BuildBalance: %v", err)
	}
	if got := rep.Cash.StringFixed(2); got != "300.00" {
		t.Errorf("Cash = %s, esperado 300.00", got)
	}
	if !rep.Cash.Equal(rep.Equity) {
		t.Errorf("Caixa e patrimônio devem ser o mesmo saldo: %s vs %s", rep.Cash, rep.Equity)
	}
}

func TestBuildBalanceInclusiveCut(t *testing.T) {
	db := newTestDB(t)
	dizimos := mustCategory(t, db, "Dízimos", "entrada")

	// lançamento exatamente na data de corte conta
	mustIncome(t, db, day(2024, time.March, 1), "50.00", dizimos.CategoryID, nil)

	rep, err := BuildBalance(db, day(2024, time.March, 1))
	if err != nil {
		t.Fatalf("BuildBalance: %v", err)
	}
	if got := rep.Cash.StringFixed(2); got != "50.00" {
		t.Errorf("Cash = %s, esperado 50.00 (corte inclusivo)", got)
	}
}
