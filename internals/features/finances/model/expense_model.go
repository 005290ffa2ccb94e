package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExpenseModel struct {
	ExpenseID          uuid.UUID       `gorm:"type:uuid;primaryKey;column:expense_id" json:"expense_id"`
	ExpenseDate        datatypes.Date  `gorm:"not null;index;column:expense_date" json:"expense_date"`
	ExpenseAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null;column:expense_amount" json:"expense_amount"`
	ExpenseDescription string          `gorm:"type:varchar(255);not null;column:expense_description" json:"expense_description"`

	ExpenseCategoryID uuid.UUID `gorm:"type:uuid;not null;index;column:expense_category_id" json:"expense_category_id"`
	ExpenseChurchID   uuid.UUID `gorm:"type:uuid;not null;index;column:expense_church_id" json:"expense_church_id"`

	ExpensePaymentMethod string  `gorm:"type:varchar(15);not null;default:'dinheiro';column:expense_payment_method" json:"expense_payment_method"`
	ExpenseReceiptPath   *string `gorm:"type:text;column:expense_receipt_path" json:"expense_receipt_path,omitempty"`

	ExpenseCreatedAt time.Time `gorm:"column:expense_created_at;not null;autoCreateTime" json:"expense_created_at"`
	ExpenseUpdatedAt time.Time `gorm:"column:expense_updated_at;not null;autoUpdateTime" json:"expense_updated_at"`
}

func (ExpenseModel) TableName() string { return "expenses" }

func (m *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExpenseID == uuid.Nil {
		m.ExpenseID = uuid.New()
	}
	return nil
}
