package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	churchModel "templodigital_backend/internals/features/churches/model"
	eventModel "templodigital_backend/internals/features/events/model"
)

func TestBuildCategoryStatementGroupsByCategory(t *testing.T) {
	db := newTestDB(t)

	dizimos := mustCategory(t, db, "Dízimos", "entrada")
	luz := mustCategory(t, db, "Luz", "saida")

	mustIncome(t, db, day(2024, time.March, 10), "50.00", dizimos.CategoryID, nil)
	mustIncome(t, db, day(2024, time.March, 5), "100.00", dizimos.CategoryID, nil)
	mustIncome(t, db, day(2024, time.March, 8), "20.00", uuid.New(), nil)
	mustExpense(t, db, day(2024, time.March, 7), "30.00", luz.CategoryID)

	// fora do mês, não entra
	mustIncome(t, db, day(2024, time.April, 1), "999.00", dizimos.CategoryID, nil)

	st, err := BuildCategoryStatement(db, 3, 2024)
	if err != nil {
		t.Fatalf("montando movimento por categoria: %v", err)
	}

	if !st.TotalIncome.Equal(decimal.RequireFromString("170.00")) {
		t.Errorf("TotalIncome = %s, esperado 170.00", st.TotalIncome)
	}
	if !st.TotalExpense.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("TotalExpense = %s, esperado 30.00", st.TotalExpense)
	}
	if !st.Balance.Equal(decimal.RequireFromString("140.00")) {
		t.Errorf("Balance = %s, esperado 140.00", st.Balance)
	}

	if len(st.Incomes) != 2 {
		t.Fatalf("grupos de entrada = %d, esperado 2", len(st.Incomes))
	}
	if st.Incomes[0].CategoryName != "Dízimos" || st.Incomes[1].CategoryName != "Sem Categoria" {
		t.Errorf("grupos fora de ordem alfabética: %s, %s",
			st.Incomes[0].CategoryName, st.Incomes[1].CategoryName)
	}

	diz := st.Incomes[0]
	if !diz.Total.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("total Dízimos = %s, esperado 150.00", diz.Total)
	}
	if len(diz.Lines) != 2 || !diz.Lines[0].Date.Before(diz.Lines[1].Date) {
		t.Errorf("lançamentos do grupo fora de ordem cronológica: %+v", diz.Lines)
	}

	if len(st.Expenses) != 1 || st.Expenses[0].CategoryName != "Luz" {
		t.Fatalf("grupos de saída = %+v", st.Expenses)
	}
	if !st.Expenses[0].Total.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("total Luz = %s, esperado 30.00", st.Expenses[0].Total)
	}
}

func TestBuildDashboardSummary(t *testing.T) {
	db := newTestDB(t)

	mustMember(t, db, "Ana")
	mustMember(t, db, "Bento")
	if err := db.Create(&churchModel.ChurchModel{ChurchName: "Sede"}).Error; err != nil {
		t.Fatalf("criando igreja: %v", err)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	cat := mustCategory(t, db, "Ofertas", "entrada")
	mustIncome(t, db, today, "100.50", cat.CategoryID, nil)
	// mês anterior, fora da arrecadação mensal
	mustIncome(t, db, today.AddDate(0, 0, -40), "999.00", cat.CategoryID, nil)

	mustEvent(t, db, "Culto de hoje", today)
	mustEvent(t, db, "Reunião de amanhã", today.AddDate(0, 0, 1))
	mustEvent(t, db, "Congresso distante", today.AddDate(0, 0, 40))

	sum, err := BuildDashboardSummary(db)
	if err != nil {
		t.Fatalf("montando painel: %v", err)
	}

	if sum.TotalMembers != 2 {
		t.Errorf("TotalMembers = %d, esperado 2", sum.TotalMembers)
	}
	if sum.TotalChurches != 1 {
		t.Errorf("TotalChurches = %d, esperado 1", sum.TotalChurches)
	}
	if sum.EventsThisMonth != 2 {
		t.Errorf("EventsThisMonth = %d, esperado 2 (evento a 40 dias fica de fora)", sum.EventsThisMonth)
	}
	if !sum.MonthIncome.Equal(decimal.RequireFromString("100.50")) {
		t.Errorf("MonthIncome = %s, esperado 100.50", sum.MonthIncome)
	}
	if len(sum.UpcomingEvents) != 3 {
		t.Fatalf("UpcomingEvents = %d, esperado 3", len(sum.UpcomingEvents))
	}
	if sum.UpcomingEvents[0].EventTitle != "Culto de hoje" {
		t.Errorf("primeiro evento = %q, esperado o de hoje", sum.UpcomingEvents[0].EventTitle)
	}
}

func mustEvent(t *testing.T, db *gorm.DB, title string, date time.Time) {
	t.Helper()
	ev := eventModel.EventModel{
		EventTitle: title,
		EventDate:  datatypes.Date(date),
		EventType:  eventModel.EventTypeCulto,
	}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatalf("criando evento %s: %v", title, err)
	}
}
