package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Matrícula: um membro por turma (CASCADE nos dois lados).
type StudentModel struct {
	StudentID             uuid.UUID       `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`
	StudentMemberID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_student_member_class;column:student_member_id" json:"student_member_id"`
	StudentClassID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_student_member_class;index;column:student_class_id" json:"student_class_id"`
	StudentEnrollmentDate *datatypes.Date `gorm:"column:student_enrollment_date" json:"student_enrollment_date,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
