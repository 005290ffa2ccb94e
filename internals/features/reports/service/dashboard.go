package service

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	churchModel "templodigital_backend/internals/features/churches/model"
	eventModel "templodigital_backend/internals/features/events/model"
	financeModel "templodigital_backend/internals/features/finances/model"
	memberModel "templodigital_backend/internals/features/members/model"
)

type DashboardSummary struct {
	TotalMembers    int64                   `json:"total_members"`
	TotalChurches   int64                   `json:"total_churches"`
	EventsThisMonth int64                   `json:"events_this_month"`
	MonthIncome     decimal.Decimal         `json:"month_income"`
	UpcomingEvents  []eventModel.EventModel `json:"upcoming_events"`
}

// BuildDashboardSummary monta os cards da tela inicial: contagem de
// membros e igrejas, eventos do primeiro dia do mês até 30 dias à
// frente, arrecadação do mês corrente e os próximos cinco eventos.
func BuildDashboardSummary(db *gorm.DB) (*DashboardSummary, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	sum := &DashboardSummary{MonthIncome: decimal.Zero}

	if err := db.Model(&memberModel.MemberModel{}).Count(&sum.TotalMembers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&churchModel.ChurchModel{}).Count(&sum.TotalChurches).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&eventModel.EventModel{}).
		Where("event_date >= ? AND event_date <= ?", monthStart, today.AddDate(0, 0, 30)).
		Count(&sum.EventsThisMonth).Error; err != nil {
		return nil, err
	}

	var incomes []financeModel.IncomeModel
	if err := db.Where("income_date >= ? AND income_date <= ?", monthStart, today).
		Find(&incomes).Error; err != nil {
		return nil, err
	}
	for _, in := range incomes {
		sum.MonthIncome = sum.MonthIncome.Add(in.IncomeAmount)
	}

	if err := db.Where("event_date >= ?", today).
		Order("event_date, event_time").
		Limit(5).
		Find(&sum.UpcomingEvents).Error; err != nil {
		return nil, err
	}
	return sum, nil
}
