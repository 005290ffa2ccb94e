package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "templodigital_backend/internals/features/school/model"
)

type CreateSchoolClassRequest struct {
	Name        string  `json:"school_class_name" validate:"required,min=2,max=100"`
	Description *string `json:"school_class_description"`
	TeacherID   *string `json:"school_class_teacher_id" validate:"omitempty,uuid"`
	Room        *string `json:"school_class_room" validate:"omitempty,max=50"`
	Schedule    *string `json:"school_class_schedule" validate:"omitempty,max=100"`
	MaxStudents *int    `json:"school_class_max_students" validate:"omitempty,min=1"`
}

func (r *CreateSchoolClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Description)
	trimPtr(&r.Room)
	trimPtr(&r.Schedule)
}

func (r *CreateSchoolClassRequest) ToModel() m.SchoolClassModel {
	return m.SchoolClassModel{
		SchoolClassName:        r.Name,
		SchoolClassDescription: r.Description,
		SchoolClassTeacherID:   parseUUIDPtr(r.TeacherID),
		SchoolClassRoom:        r.Room,
		SchoolClassSchedule:    r.Schedule,
		SchoolClassMaxStudents: r.MaxStudents,
	}
}

type UpdateSchoolClassRequest struct {
	Name        *string `json:"school_class_name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"school_class_description"`
	TeacherID   *string `json:"school_class_teacher_id" validate:"omitempty,uuid"`
	Room        *string `json:"school_class_room" validate:"omitempty,max=50"`
	Schedule    *string `json:"school_class_schedule" validate:"omitempty,max=100"`
	MaxStudents *int    `json:"school_class_max_students" validate:"omitempty,min=1"`
}

func (r *UpdateSchoolClassRequest) Normalize() {
	trimPtr(&r.Name)
	trimPtr(&r.Description)
	trimPtr(&r.Room)
	trimPtr(&r.Schedule)
}

func (r *UpdateSchoolClassRequest) Apply(class *m.SchoolClassModel) {
	if r.Name != nil {
		class.SchoolClassName = *r.Name
	}
	if r.Description != nil {
		class.SchoolClassDescription = r.Description
	}
	if id := parseUUIDPtr(r.TeacherID); id != nil {
		class.SchoolClassTeacherID = id
	}
	if r.Room != nil {
		class.SchoolClassRoom = r.Room
	}
	if r.Schedule != nil {
		class.SchoolClassSchedule = r.Schedule
	}
	if r.MaxStudents != nil {
		class.SchoolClassMaxStudents = r.MaxStudents
	}
}

type EnrollStudentRequest struct {
	MemberID       string  `json:"student_member_id" validate:"required,uuid"`
	ClassID        string  `json:"student_class_id" validate:"required,uuid"`
	EnrollmentDate *string `json:"student_enrollment_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *EnrollStudentRequest) ToModel() m.StudentModel {
	return m.StudentModel{
		StudentMemberID:       uuid.MustParse(r.MemberID),
		StudentClassID:        uuid.MustParse(r.ClassID),
		StudentEnrollmentDate: parseDatePtr(r.EnrollmentDate),
	}
}

type UpdateStudentRequest struct {
	ClassID        *string `json:"student_class_id" validate:"omitempty,uuid"`
	EnrollmentDate *string `json:"student_enrollment_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateStudentRequest) Apply(st *m.StudentModel) {
	if id := parseUUIDPtr(r.ClassID); id != nil {
		st.StudentClassID = *id
	}
	if d := parseDatePtr(r.EnrollmentDate); d != nil {
		st.StudentEnrollmentDate = d
	}
}

// Lote de presença de um dia.
type AttendanceEntry struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Present   bool   `json:"present"`
}

type RecordAttendanceRequest struct {
	Date    string            `json:"date" validate:"required,datetime=2006-01-02"`
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}

func parseDatePtr(s *string) *datatypes.Date {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

func parseUUIDPtr(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
