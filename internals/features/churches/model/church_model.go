package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ChurchTypeSede   = "sede"
	ChurchTypeFilial = "filial"
)

type ChurchModel struct {
	ChurchID uuid.UUID `gorm:"type:uuid;primaryKey;column:church_id" json:"church_id"`

	ChurchName    string  `gorm:"type:varchar(255);not null;column:church_name" json:"church_name"`
	ChurchAddress *string `gorm:"type:text;column:church_address" json:"church_address,omitempty"`
	ChurchPhone   *string `gorm:"type:varchar(20);column:church_phone" json:"church_phone,omitempty"`
	ChurchEmail   *string `gorm:"type:varchar(255);column:church_email" json:"church_email,omitempty"`

	ChurchFoundedDate *datatypes.Date `gorm:"column:church_founded_date" json:"church_founded_date,omitempty"`
	ChurchSchedule    *string         `gorm:"type:text;column:church_schedule" json:"church_schedule,omitempty"`

	// sede | filial
	ChurchType        *string `gorm:"type:varchar(10);column:church_type" json:"church_type,omitempty"`
	ChurchDescription *string `gorm:"type:text;column:church_description" json:"church_description,omitempty"`

	ChurchCreatedAt time.Time      `gorm:"column:church_created_at;not null;autoCreateTime" json:"church_created_at"`
	ChurchUpdatedAt time.Time      `gorm:"column:church_updated_at;not null;autoUpdateTime" json:"church_updated_at"`
	ChurchDeletedAt gorm.DeletedAt `gorm:"column:church_deleted_at;index" json:"church_deleted_at,omitempty"`
}

func (ChurchModel) TableName() string { return "churches" }

func (m *ChurchModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChurchID == uuid.Nil {
		m.ChurchID = uuid.New()
	}
	return nil
}
