package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTypeEntrada = "entrada"
	CategoryTypeSaida   = "saida"
	CategoryTypeAmbos   = "ambos"
)

type CategoryModel struct {
	CategoryID          uuid.UUID `gorm:"type:uuid;primaryKey;column:category_id" json:"category_id"`
	CategoryName        string    `gorm:"type:varchar(100);not null;uniqueIndex;column:category_name" json:"category_name"`
	CategoryType        string    `gorm:"type:varchar(10);not null;default:'ambos';column:category_type" json:"category_type"`
	CategoryDescription *string   `gorm:"type:text;column:category_description" json:"category_description,omitempty"`

	CategoryCreatedAt time.Time      `gorm:"column:category_created_at;not null;autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt time.Time      `gorm:"column:category_updated_at;not null;autoUpdateTime" json:"category_updated_at"`
	CategoryDeletedAt gorm.DeletedAt `gorm:"column:category_deleted_at;index" json:"category_deleted_at,omitempty"`
}

func (CategoryModel) TableName() string { return "categories" }

func (m *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = uuid.New()
	}
	return nil
}

// CategoryInUse informa se alguma entrada ou saída referencia a categoria.
func CategoryInUse(tx *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	if err := tx.Model(&IncomeModel{}).
		Where("income_category_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := tx.Model(&ExpenseModel{}).
		Where("expense_category_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
