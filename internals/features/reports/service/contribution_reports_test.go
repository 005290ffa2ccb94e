package service

import (
	"testing"
	"time"
)

func TestIsTitheCategory(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Dízimos", true},
		{"dizimo mensal", true},
		{"Ofertas Especiais", true},
		{"oferta", true},
		{"Energia Elétrica", false},
		{"Doações", false},
	}
	for _, tc := range cases {
		if got := IsTitheCategory(tc.name); got != tc.want {
			t.Errorf("IsTitheCategory(%q) = %v, esperado %v", tc.name, got, tc.want)
		}
	}
}

func TestBuildContributionReport(t *testing.T) {
	db := newTestDB(t)
	dizimos := mustCategory(t, db, "Dízimos", "entrada")
	ofertas := mustCategory(t, db, "Ofertas", "entrada")
	luz := mustCategory(t, db, "Energia Elétrica", "saida")
	ana := mustMember(t, db, "Ana")
	bruno := mustMember(t, db, "Bruno")

	// Ana: 50 em janeiro (dízimo) + 30 em fevereiro (oferta) = 80
	mustIncome(t, db, day(2024, time.January, 7), "50.00", dizimos.CategoryID, &ana.MemberID)
	mustIncome(t, db, day(2024, time.February, 4), "30.00", ofertas.CategoryID, &ana.MemberID)
	// categoria que não é dízimo/oferta fica de fora da matriz
	mustIncome(t, db, day(2024, time.March, 1), "500.00", luz.CategoryID, &ana.MemberID)
	// entrada sem membro fica de fora
	mustIncome(t, db, day(2024, time.January, 14), "70.00", dizimos.CategoryID, nil)
	// outro membro
	mustIncome(t, db, day(2024, time.May, 5), "20.00", dizimos.CategoryID, &bruno.MemberID)
	// outro ano fica de fora
	mustIncome(t, db, day(2023, time.December, 31), "40.00", dizimos.CategoryID, &ana.MemberID)

	rep, err := BuildContributionReport(db, 2024, nil)
	if err != nil {
		t.Fatalf("BuildContributionReport: %v", err)
	}
	if len(rep.Members) != 2 {
		t.Fatalf("Members = %d, esperado 2", len(rep.Members))
	}

	// ordem alfabética: Ana, Bruno
	ana24 := rep.Members[0]
	if ana24.MemberName != "Ana" {
		t.Fatalf("Members[0] = %q, esperado Ana", ana24.MemberName)
	}
	if got := ana24.Months[0].StringFixed(2); got != "50.00" {
		t.Errorf("Ana janeiro = %s, esperado 50.00", got)
	}
	if got := ana24.Months[1].StringFixed(2); got != "30.00" {
		t.Errorf("Ana fevereiro = %s, esperado 30.00", got)
	}
	for i := 2; i < 12; i++ {
		if !ana24.Months[i].IsZero() {
			t.Errorf("Ana mês %d = %s, esperado 0", i+1, ana24.Months[i])
		}
	}
	if got := ana24.Total.StringFixed(2); got != "80.00" {
		t.Errorf("Ana total = %s, esperado 80.00", got)
	}
	if got := rep.GrandTotal.StringFixed(2); got != "100.00" {
		t.Errorf("GrandTotal = %s, esperado 100.00", got)
	}
}

func TestBuildContributionReportFilteredByMember(t *testing.T) {
	db := newTestDB(t)
	dizimos := mustCategory(t, db, "Dízimos", "entrada")
	ana := mustMember(t, db, "Ana")
	bruno := mustMember(t, db, "Bruno")

	mustIncome(t, db, day(2024, time.January, 7), "50.00", dizimos.CategoryID, &ana.MemberID)
	mustIncome(t, db, day(2024, time.January, 7), "20.00", dizimos.CategoryID, &bruno.MemberID)

	rep, err := BuildContributionReport(db, 2024, &ana.MemberID)
	if err != nil {
		t.Fatalf("BuildContributionReport: %v", err)
	}
	if len(rep.Members) != 1 || rep.Members[0].MemberName != "Ana" {
		t.Fatalf("filtro por membro falhou: %+v", rep.Members)
	}
	if got := rep.GrandTotal.StringFixed(2); got != "50.00" {
		t.Errorf("GrandTotal = %s, esperado 50.00", got)
	}
}
