package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EventTypeCulto    = "culto"
	EventTypeReuniao  = "reuniao"
	EventTypeEspecial = "especial"
)

type EventModel struct {
	EventID          uuid.UUID      `gorm:"type:uuid;primaryKey;column:event_id" json:"event_id"`
	EventTitle       string         `gorm:"type:varchar(255);not null;column:event_title" json:"event_title"`
	EventDate        datatypes.Date `gorm:"not null;index;column:event_date" json:"event_date"`
	EventTime        *string        `gorm:"type:varchar(5);column:event_time" json:"event_time,omitempty"`
	EventDescription *string        `gorm:"type:text;column:event_description" json:"event_description,omitempty"`
	// culto | reuniao | especial
	EventType     string     `gorm:"type:varchar(10);not null;default:'culto';column:event_type" json:"event_type"`
	EventChurchID *uuid.UUID `gorm:"type:uuid;index;column:event_church_id" json:"event_church_id,omitempty"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;not null;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;not null;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
