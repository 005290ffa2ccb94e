package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "templodigital_backend/internals/features/members/model"
	schoolModel "templodigital_backend/internals/features/school/model"
)

type AttendanceLine struct {
	StudentID  uuid.UUID `json:"student_id"`
	MemberName string    `json:"member_name"`
	ClassName  string    `json:"class_name"`
	Present    bool      `json:"present"`
	HasRecord  bool      `json:"has_record"`
}

type AttendanceReport struct {
	Date         time.Time        `json:"date"`
	ClassName    string           `json:"class_name"`
	Lines        []AttendanceLine `json:"lines"`
	TotalPresent int              `json:"total_present"`
	TotalAbsent  int              `json:"total_absent"`
	TotalRecords int              `json:"total_records"`
}

// BuildAttendanceReport lista a presença por aluno no dia. classID
// desconhecido ou nulo degrada para todas as turmas.
func BuildAttendanceReport(db *gorm.DB, classID *uuid.UUID, date time.Time) (*AttendanceReport, error) {
	classes, err := classNames(db)
	if err != nil {
		return nil, err
	}

	className := "Todas as Turmas"
	studentQ := db.Model(&schoolModel.StudentModel{})
	if classID != nil {
		if name, ok := classes[*classID]; ok {
			className = name
			studentQ = studentQ.Where("student_class_id = ?", *classID)
		}
	}

	var students []schoolModel.StudentModel
	if err := studentQ.Find(&students).Error; err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	var records []schoolModel.AttendanceModel
	if err := db.Where("attendance_date >= ? AND attendance_date < ?", dayStart, dayEnd).
		Find(&records).Error; err != nil {
		return nil, err
	}
	recordByStudent := make(map[uuid.UUID]schoolModel.AttendanceModel, len(records))
	for _, rec := range records {
		recordByStudent[rec.AttendanceStudentID] = rec
	}

	members, err := memberNamesFor(db, students)
	if err != nil {
		return nil, err
	}

	rep := &AttendanceReport{Date: dayStart, ClassName: className}
	for _, st := range students {
		line := AttendanceLine{
			StudentID:  st.StudentID,
			MemberName: members[st.StudentMemberID],
			ClassName:  classes[st.StudentClassID],
		}
		if rec, ok := recordByStudent[st.StudentID]; ok {
			line.HasRecord = true
			line.Present = rec.AttendancePresent
			rep.TotalRecords++
			if rec.AttendancePresent {
				rep.TotalPresent++
			} else {
				rep.TotalAbsent++
			}
		}
		rep.Lines = append(rep.Lines, line)
	}
	sort.SliceStable(rep.Lines, func(i, j int) bool {
		if rep.Lines[i].ClassName != rep.Lines[j].ClassName {
			return rep.Lines[i].ClassName < rep.Lines[j].ClassName
		}
		return rep.Lines[i].MemberName < rep.Lines[j].MemberName
	})
	return rep, nil
}

type RosterEntry struct {
	ClassName    string   `json:"class_name"`
	StudentCount int      `json:"student_count"`
	Students     []string `json:"students"`
}

type StudentRosterReport struct {
	Classes       []RosterEntry `json:"classes"`
	TotalStudents int           `json:"total_students"`
}

// BuildStudentRoster agrupa os alunos matriculados por turma.
func BuildStudentRoster(db *gorm.DB) (*StudentRosterReport, error) {
	classes, err := classNames(db)
	if err != nil {
		return nil, err
	}

	var students []schoolModel.StudentModel
	if err := db.Find(&students).Error; err != nil {
		return nil, err
	}
	members, err := memberNamesFor(db, students)
	if err != nil {
		return nil, err
	}

	byClass := map[uuid.UUID][]string{}
	for _, st := range students {
		byClass[st.StudentClassID] = append(byClass[st.StudentClassID], members[st.StudentMemberID])
	}

	rep := &StudentRosterReport{}
	for classID, names := range byClass {
		sort.Strings(names)
		rep.Classes = append(rep.Classes, RosterEntry{
			ClassName:    classes[classID],
			StudentCount: len(names),
			Students:     names,
		})
		rep.TotalStudents += len(names)
	}
	sort.SliceStable(rep.Classes, func(i, j int) bool {
		return rep.Classes[i].ClassName < rep.Classes[j].ClassName
	})
	return rep, nil
}

func classNames(db *gorm.DB) (map[uuid.UUID]string, error) {
	var classes []schoolModel.SchoolClassModel
	if err := db.Find(&classes).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(classes))
	for _, class := range classes {
		names[class.SchoolClassID] = class.SchoolClassName
	}
	return names, nil
}

func memberNamesFor(db *gorm.DB, students []schoolModel.StudentModel) (map[uuid.UUID]string, error) {
	if len(students) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	ids := make([]uuid.UUID, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.StudentMemberID)
	}
	var members []memberModel.MemberModel
	if err := db.Where("member_id IN ?", ids).Find(&members).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(members))
	for _, member := range members {
		names[member.MemberID] = member.MemberName
	}
	return names, nil
}
