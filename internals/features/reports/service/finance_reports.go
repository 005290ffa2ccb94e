package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	financeModel "templodigital_backend/internals/features/finances/model"
)

const KindIncome = "entrada"
const KindExpense = "saida"

type MovementLine struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
}

type MonthlyMovement struct {
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	Lines        []MovementLine  `json:"lines"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// BuildMonthlyMovement monta o livro-caixa do mês em ordem cronológica.
func BuildMonthlyMovement(db *gorm.DB, month, year int) (*MonthlyMovement, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	categories, err := categoryNames(db)
	if err != nil {
		return nil, err
	}

	var incomes []financeModel.IncomeModel
	if err := db.Where("income_date >= ? AND income_date < ?", start, end).
		Find(&incomes).Error; err != nil {
		return nil, err
	}
	var expenses []financeModel.ExpenseModel
	if err := db.Where("expense_date >= ? AND expense_date < ?", start, end).
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	mov := &MonthlyMovement{
		Month:        month,
		Year:         year,
		Lines:        make([]MovementLine, 0, len(incomes)+len(expenses)),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, in := range incomes {
		mov.Lines = append(mov.Lines, MovementLine{
			Date:        time.Time(in.IncomeDate),
			Description: in.IncomeDescription,
			Category:    categoryOrFallback(categories, in.IncomeCategoryID),
			Kind:        KindIncome,
			Amount:      in.IncomeAmount,
		})
		mov.TotalIncome = mov.TotalIncome.Add(in.IncomeAmount)
	}
	for _, ex := range expenses {
		mov.Lines = append(mov.Lines, MovementLine{
			Date:        time.Time(ex.ExpenseDate),
			Description: ex.ExpenseDescription,
			Category:    categoryOrFallback(categories, ex.ExpenseCategoryID),
			Kind:        KindExpense,
			Amount:      ex.ExpenseAmount,
		})
		mov.TotalExpense = mov.TotalExpense.Add(ex.ExpenseAmount)
	}
	sort.SliceStable(mov.Lines, func(i, j int) bool {
		return mov.Lines[i].Date.Before(mov.Lines[j].Date)
	})
	mov.Balance = mov.TotalIncome.Sub(mov.TotalExpense)
	return mov, nil
}

type CategorySum struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type DREReport struct {
	Year             int             `json:"year"`
	Revenues         []CategorySum   `json:"revenues"`
	Expenditures     []CategorySum   `json:"expenditures"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenditure decimal.Decimal `json:"total_expenditure"`
	NetResult        decimal.Decimal `json:"net_result"`
}

// BuildDRE soma entradas e saídas do ano por categoria, em ordem
// decrescente de valor. Lançamento sem categoria resolve para
// "Sem Categoria".
func BuildDRE(db *gorm.DB, year int) (*DREReport, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	categories, err := categoryNames(db)
	if err != nil {
		return nil, err
	}

	var incomes []financeModel.IncomeModel
	if err := db.Where("income_date >= ? AND income_date < ?", start, end).
		Find(&incomes).Error; err != nil {
		return nil, err
	}
	var expenses []financeModel.ExpenseModel
	if err := db.Where("expense_date >= ? AND expense_date < ?", start, end).
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	rep := &DREReport{
		Year:             year,
		TotalRevenue:     decimal.Zero,
		TotalExpenditure: decimal.Zero,
	}

	revenueByCat := map[string]decimal.Decimal{}
	for _, in := range incomes {
		name := categoryOrFallback(categories, in.IncomeCategoryID)
		revenueByCat[name] = revenueByCat[name].Add(in.IncomeAmount)
		rep.TotalRevenue = rep.TotalRevenue.Add(in.IncomeAmount)
	}
	expenditureByCat := map[string]decimal.Decimal{}
	for _, ex := range expenses {
		name := categoryOrFallback(categories, ex.ExpenseCategoryID)
		expenditureByCat[name] = expenditureByCat[name].Add(ex.ExpenseAmount)
		rep.TotalExpenditure = rep.TotalExpenditure.Add(ex.ExpenseAmount)
	}

	rep.Revenues = sortedSums(revenueByCat)
	rep.Expenditures = sortedSums(expenditureByCat)
	rep.NetResult = rep.TotalRevenue.Sub(rep.TotalExpenditure)
	return rep, nil
}

type BalanceReport struct {
	EndDate      time.Time       `json:"end_date"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Cash         decimal.Decimal `json:"cash"`
	Equity       decimal.Decimal `json:"equity"`
}

// BuildBalance acumula o movimento até a data de corte (inclusive).
// Caixa e patrimônio são o mesmo saldo acumulado.
func BuildBalance(db *gorm.DB, endDate time.Time) (*BalanceReport, error) {
	cut := endDate.AddDate(0, 0, 1)

	var incomes []financeModel.IncomeModel
	if err := db.Where("income_date < ?", cut).Find(&incomes).Error; err != nil {
		return nil, err
	}
	var expenses []financeModel.ExpenseModel
	if err := db.Where("expense_date < ?", cut).Find(&expenses).Error; err != nil {
		return nil, err
	}

	rep := &BalanceReport{
		EndDate:      endDate,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, in := range incomes {
		rep.TotalIncome = rep.TotalIncome.Add(in.IncomeAmount)
	}
	for _, ex := range expenses {
		rep.TotalExpense = rep.TotalExpense.Add(ex.ExpenseAmount)
	}
	rep.Cash = rep.TotalIncome.Sub(rep.TotalExpense)
	rep.Equity = rep.Cash
	return rep, nil
}

func categoryNames(db *gorm.DB) (map[uuid.UUID]string, error) {
	var cats []financeModel.CategoryModel
	if err := db.Unscoped().Find(&cats).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(cats))
	for _, cat := range cats {
		names[cat.CategoryID] = cat.CategoryName
	}
	return names, nil
}

func categoryOrFallback(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return "Sem Categoria"
}

func sortedSums(byCat map[string]decimal.Decimal) []CategorySum {
	sums := make([]CategorySum, 0, len(byCat))
	for name, total := range byCat {
		sums = append(sums, CategorySum{Category: name, Total: total})
	}
	sort.SliceStable(sums, func(i, j int) bool {
		if sums[i].Total.Equal(sums[j].Total) {
			return sums[i].Category < sums[j].Category
		}
		return sums[i].Total.GreaterThan(sums[j].Total)
	})
	return sums
}
