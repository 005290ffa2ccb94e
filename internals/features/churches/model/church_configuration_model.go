package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChurchConfigurationModel é a identidade da sede usada no cabeçalho dos
// relatórios exportados. Singleton: a criação é recusada quando já existe
// uma linha (checagem dentro da transação de insert).
type ChurchConfigurationModel struct {
	ChurchConfigID uuid.UUID `gorm:"type:uuid;primaryKey;column:church_config_id" json:"church_config_id"`

	ChurchConfigChurchName      string  `gorm:"type:varchar(255);not null;column:church_config_church_name" json:"church_config_church_name"`
	ChurchConfigLogoPath        *string `gorm:"type:text;column:church_config_logo_path" json:"church_config_logo_path,omitempty"`
	ChurchConfigPresidentPastor *string `gorm:"type:varchar(255);column:church_config_president_pastor" json:"church_config_president_pastor,omitempty"`
	ChurchConfigTreasurerName   *string `gorm:"type:varchar(255);column:church_config_treasurer_name" json:"church_config_treasurer_name,omitempty"`

	ChurchConfigCreatedAt time.Time `gorm:"column:church_config_created_at;not null;autoCreateTime" json:"church_config_created_at"`
	ChurchConfigUpdatedAt time.Time `gorm:"column:church_config_updated_at;not null;autoUpdateTime" json:"church_config_updated_at"`
}

func (ChurchConfigurationModel) TableName() string { return "church_configuration" }

func (m *ChurchConfigurationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChurchConfigID == uuid.Nil {
		m.ChurchConfigID = uuid.New()
	}
	return nil
}

// ConfigurationExists verifica o invariante singleton.
func ConfigurationExists(tx *gorm.DB) (bool, error) {
	var cnt int64
	if err := tx.Model(&ChurchConfigurationModel{}).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
