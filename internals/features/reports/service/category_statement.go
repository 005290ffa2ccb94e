package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	financeModel "templodigital_backend/internals/features/finances/model"
)

type StatementLine struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type CategoryGroup struct {
	CategoryName string          `json:"category_name"`
	Lines        []StatementLine `json:"lines"`
	Total        decimal.Decimal `json:"total"`
}

type CategoryStatement struct {
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	Incomes      []CategoryGroup `json:"incomes"`
	Expenses     []CategoryGroup `json:"expenses"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// BuildCategoryStatement abre o movimento do mês por categoria, com os
// lançamentos de cada grupo em ordem cronológica e os grupos em ordem
// alfabética.
func BuildCategoryStatement(db *gorm.DB, month, year int) (*CategoryStatement, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	categories, err := categoryNames(db)
	if err != nil {
		return nil, err
	}

	var incomes []financeModel.IncomeModel
	if err := db.Where("income_date >= ? AND income_date < ?", start, end).
		Order("income_date").Find(&incomes).Error; err != nil {
		return nil, err
	}
	var expenses []financeModel.ExpenseModel
	if err := db.Where("expense_date >= ? AND expense_date < ?", start, end).
		Order("expense_date").Find(&expenses).Error; err != nil {
		return nil, err
	}

	st := &CategoryStatement{
		Month:        month,
		Year:         year,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	incomeGroups := map[string]*CategoryGroup{}
	for _, in := range incomes {
		name := categoryOrFallback(categories, in.IncomeCategoryID)
		g, ok := incomeGroups[name]
		if !ok {
			g = &CategoryGroup{CategoryName: name, Total: decimal.Zero}
			incomeGroups[name] = g
		}
		g.Lines = append(g.Lines, StatementLine{
			Date:        time.Time(in.IncomeDate),
			Description: in.IncomeDescription,
			Amount:      in.IncomeAmount,
		})
		g.Total = g.Total.Add(in.IncomeAmount)
		st.TotalIncome = st.TotalIncome.Add(in.IncomeAmount)
	}
	expenseGroups := map[string]*CategoryGroup{}
	for _, ex := range expenses {
		name := categoryOrFallback(categories, ex.ExpenseCategoryID)
		g, ok := expenseGroups[name]
		if !ok {
			g = &CategoryGroup{CategoryName: name, Total: decimal.Zero}
			expenseGroups[name] = g
		}
		g.Lines = append(g.Lines, StatementLine{
			Date:        time.Time(ex.ExpenseDate),
			Description: ex.ExpenseDescription,
			Amount:      ex.ExpenseAmount,
		})
		g.Total = g.Total.Add(ex.ExpenseAmount)
		st.TotalExpense = st.TotalExpense.Add(ex.ExpenseAmount)
	}

	st.Incomes = sortedGroups(incomeGroups)
	st.Expenses = sortedGroups(expenseGroups)
	st.Balance = st.TotalIncome.Sub(st.TotalExpense)
	return st, nil
}

func sortedGroups(byName map[string]*CategoryGroup) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(byName))
	for _, g := range byName {
		groups = append(groups, *g)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].CategoryName < groups[j].CategoryName
	})
	return groups
}
