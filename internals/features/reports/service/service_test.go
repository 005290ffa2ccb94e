package service

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

	churchModel "templodigital_backend/internals/features/churches/model"
	eventModel "templodigital_backend/internals/features/events/model"
	financeModel "templodigital_backend/internals/features/finances/model"
	memberModel "templodigital_backend/internals/features/members/model"
	schoolModel "templodigital_backend/internals/features/school/model"
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
	if err := db.AutoMigrate(
		&churchModel.ChurchModel{},
		&memberModel.MemberModel{},
		&financeModel.CategoryModel{},
		&financeModel.IncomeModel{},
		&financeModel.ExpenseModel{},
		&eventModel.EventModel{},
		&schoolModel.SchoolClassModel{},
		&schoolModel.StudentModel{},
		&schoolModel.AttendanceModel{},
	); err != nil {
		t.Fatalf("migrando esquema: %v", err)
	}
	return db
}

func mustCategory(t *testing.T, db *gorm.DB, name, kind string) financeModel.CategoryModel {
	t.Helper()
	cat := financeModel.CategoryModel{CategoryName: name, CategoryType: kind}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("criando categoria %s: %v", name, err)
	}
	return cat
}

func mustMember(t *testing.T, db *gorm.DB, name string) memberModel.MemberModel {
	t.Helper()
	m := memberModel.MemberModel{
		MemberName:   name,
		MemberType:   "membro",
		MemberStatus: memberModel.MemberStatusAtivo,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("criando membro %s: %v", name, err)
	}
	return m
}

func mustIncome(t *testing.T, db *gorm.DB, date time.Time, amount string, catID uuid.UUID, memberID *uuid.UUID) {
	t.Helper()
	in := financeModel.IncomeModel{
		IncomeDate:          datatypes.Date(date),
		IncomeAmount:        decimal.RequireFromString(amount),
		IncomeDescription:   "entrada de teste",
		IncomeCategoryID:    catID,
		IncomeChurchID:      uuid.New(),
		IncomeMemberID:      memberID,
		IncomePaymentMethod: financeModel.PaymentMethodDinheiro,
	}
	if err := db.Create(&in).Error; err != nil {
		t.Fatalf("criando entrada: %v", err)
	}
}

func mustExpense(t *testing.T, db *gorm.DB, date time.Time, amount string, catID uuid.UUID) {
	t.Helper()
	ex := financeModel.ExpenseModel{
		ExpenseDate:          datatypes.Date(date),
		ExpenseAmount:        decimal.RequireFromString(amount),
		ExpenseDescription:   "saída de teste",
		ExpenseCategoryID:    catID,
		ExpenseChurchID:      uuid.New(),
		ExpensePaymentMethod: financeModel.PaymentMethodDinheiro,
	}
	if err := db.Create(&ex).Error; err != nil {
		t.Fatalf("criando saída: %v", err)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
