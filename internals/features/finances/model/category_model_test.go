package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite: %v", err)
	}
	if err := db.AutoMigrate(&CategoryModel{}, &IncomeModel{}, &ExpenseModel{}); err != nil {
		t.Fatalf("migrando esquema: %v", err)
	}
	return db
}

func TestCategoryInUse(t *testing.T) {
	db := newTestDB(t)

	free := CategoryModel{CategoryName: "Sem Uso", CategoryType: CategoryTypeAmbos}
	used := CategoryModel{CategoryName: "Dízimos", CategoryType: CategoryTypeEntrada}
	usedByExpense := CategoryModel{CategoryName: "Energia", CategoryType: CategoryTypeSaida}
	for _, cat := range []*CategoryModel{&free, &used, &usedByExpense} {
		if err := db.Create(cat).Error; err != nil {
			t.Fatalf("criando categoria: %v", err)
		}
	}

	income := IncomeModel{
		IncomeDate:          datatypes.Date(time.Now()),
		IncomeAmount:        decimal.NewFromInt(10),
		IncomeDescription:   "dízimo",
		IncomeCategoryID:    used.CategoryID,
		IncomeChurchID:      uuid.New(),
		IncomePaymentMethod: PaymentMethodPix,
	}
	if err := db.Create(&income).Error; err != nil {
		t.Fatalf("criando entrada: %v", err)
	}
	expense := ExpenseModel{
		ExpenseDate:          datatypes.Date(time.Now()),
		ExpenseAmount:        decimal.NewFromInt(5),
		ExpenseDescription:   "conta de luz",
		ExpenseCategoryID:    usedByExpense.CategoryID,
		ExpenseChurchID:      uuid.New(),
		ExpensePaymentMethod: PaymentMethodDinheiro,
	}
	if err := db.Create(&expense).Error; err != nil {
		t.Fatalf("criando saída: %v", err)
	}

	cases := []struct {
		name string
		id   uuid.UUID
		want bool
	}{
		{"livre", free.CategoryID, false},
		{"com entrada", used.CategoryID, true},
		{"com saída", usedByExpense.CategoryID, true},
	}
	for _, tc := range cases {
		got, err := CategoryInUse(db, tc.id)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: CategoryInUse = %v, esperado %v", tc.name, got, tc.want)
		}
	}
}
