package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Um registro por aluno por dia.
type AttendanceModel struct {
	AttendanceID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceStudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceClassID   uuid.UUID      `gorm:"type:uuid;not null;index;column:attendance_class_id" json:"attendance_class_id"`
	AttendanceDate      datatypes.Date `gorm:"not null;uniqueIndex:uq_attendance_student_date;index;column:attendance_date" json:"attendance_date"`
	AttendancePresent   bool           `gorm:"not null;default:false;column:attendance_present" json:"attendance_present"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;not null;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;not null;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
