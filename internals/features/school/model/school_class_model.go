package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolClassModel struct {
	SchoolClassID          uuid.UUID `gorm:"type:uuid;primaryKey;column:school_class_id" json:"school_class_id"`
	SchoolClassName        string    `gorm:"type:varchar(100);not null;column:school_class_name" json:"school_class_name"`
	SchoolClassDescription *string   `gorm:"type:text;column:school_class_description" json:"school_class_description,omitempty"`

	// professor é um membro (SET NULL na exclusão)
	SchoolClassTeacherID *uuid.UUID `gorm:"type:uuid;column:school_class_teacher_id" json:"school_class_teacher_id,omitempty"`

	SchoolClassRoom        *string `gorm:"type:varchar(50);column:school_class_room" json:"school_class_room,omitempty"`
	SchoolClassSchedule    *string `gorm:"type:varchar(100);column:school_class_schedule" json:"school_class_schedule,omitempty"`
	SchoolClassMaxStudents *int    `gorm:"column:school_class_max_students" json:"school_class_max_students,omitempty"`

	SchoolClassCreatedAt time.Time      `gorm:"column:school_class_created_at;not null;autoCreateTime" json:"school_class_created_at"`
	SchoolClassUpdatedAt time.Time      `gorm:"column:school_class_updated_at;not null;autoUpdateTime" json:"school_class_updated_at"`
	SchoolClassDeletedAt gorm.DeletedAt `gorm:"column:school_class_deleted_at;index" json:"school_class_deleted_at,omitempty"`
}

func (SchoolClassModel) TableName() string { return "school_classes" }

func (m *SchoolClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolClassID == uuid.Nil {
		m.SchoolClassID = uuid.New()
	}
	return nil
}
