package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentMethodDinheiro      = "dinheiro"
	PaymentMethodPix           = "pix"
	PaymentMethodCartao        = "cartao"
	PaymentMethodTransferencia = "transferencia"
	PaymentMethodCheque        = "cheque"
	PaymentMethodOutro         = "outro"
)

type IncomeModel struct {
	IncomeID          uuid.UUID       `gorm:"type:uuid;primaryKey;column:income_id" json:"income_id"`
	IncomeDate        datatypes.Date  `gorm:"not null;index;column:income_date" json:"income_date"`
	IncomeAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null;column:income_amount" json:"income_amount"`
	IncomeDescription string          `gorm:"type:varchar(255);not null;column:income_description" json:"income_description"`

	IncomeCategoryID uuid.UUID  `gorm:"type:uuid;not null;index;column:income_category_id" json:"income_category_id"`
	IncomeChurchID   uuid.UUID  `gorm:"type:uuid;not null;index;column:income_church_id" json:"income_church_id"`
	IncomeMemberID   *uuid.UUID `gorm:"type:uuid;index;column:income_member_id" json:"income_member_id,omitempty"`

	IncomePaymentMethod string  `gorm:"type:varchar(15);not null;default:'dinheiro';column:income_payment_method" json:"income_payment_method"`
	IncomeReceiptPath   *string `gorm:"type:text;column:income_receipt_path" json:"income_receipt_path,omitempty"`

	IncomeCreatedAt time.Time `gorm:"column:income_created_at;not null;autoCreateTime" json:"income_created_at"`
	IncomeUpdatedAt time.Time `gorm:"column:income_updated_at;not null;autoUpdateTime" json:"income_updated_at"`
}

func (IncomeModel) TableName() string { return "incomes" }

func (m *IncomeModel) BeforeCreate(tx *gorm.DB) error {
	if m.IncomeID == uuid.Nil {
		m.IncomeID = uuid.New()
	}
	return nil
}
