package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	memberModel "templodigital_backend/internals/features/members/model"
	schoolModel "templodigital_backend/internals/features/school/model"
)

func mustClass(t *testing.T, db *gorm.DB, name string) schoolModel.SchoolClassModel {
	t.Helper()
	class := schoolModel.SchoolClassModel{SchoolClassName: name}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("criando turma %s: %v", name, err)
	}
	return class
}

func mustStudent(t *testing.T, db *gorm.DB, memberID, classID uuid.UUID) schoolModel.StudentModel {
	t.Helper()
	st := schoolModel.StudentModel{StudentMemberID: memberID, StudentClassID: classID}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("matriculando aluno: %v", err)
	}
	return st
}

func TestBuildAttendanceReport(t *testing.T) {
	db := newTestDB(t)
	turma := mustClass(t, db, "Turma Infantil")
	outra := mustClass(t, db, "Turma Jovens")
	ana := mustMember(t, db, "Ana")
	bruno := mustMember(t, db, "Bruno")
	carla := mustMember(t, db, "Carla")

	stAna := mustStudent(t, db, ana.MemberID, turma.SchoolClassID)
	stBruno := mustStudent(t, db, bruno.MemberID, turma.SchoolClassID)
	mustStudent(t, db, carla.MemberID, outra.SchoolClassID)

	date := day(2024, time.June, 2)
	records := []schoolModel.AttendanceModel{
		{AttendanceStudentID: stAna.StudentID, AttendanceClassID: turma.SchoolClassID, AttendanceDate: datatypes.Date(date), AttendancePresent: true},
		{AttendanceStudentID: stBruno.StudentID, AttendanceClassID: turma.SchoolClassID, AttendanceDate: datatypes.Date(date), AttendancePresent: false},
	}
	if err := db.Create(&records).Error; err != nil {
		t.Fatalf("criando presenças: %v", err)
	}

	rep, err := BuildAttendanceReport(db, &turma.SchoolClassID, date)
	if err != nil {
		t.Fatalf("BuildAttendanceReport: %v", err)
	}
	if rep.ClassName != "Turma Infantil" {
		t.Errorf("ClassName = %q", rep.ClassName)
	}
	if len(rep.Lines) != 2 {
		t.Fatalf("Lines = %d, esperado 2 (só a turma filtrada)", len(rep.Lines))
	}
	if rep.TotalPresent != 1 || rep.TotalAbsent != 1 || rep.TotalRecords != 2 {
		t.Errorf("totais = %d/%d/%d, esperado 1/1/2",
			rep.TotalPresent, rep.TotalAbsent, rep.TotalRecords)
	}
}

func TestBuildAttendanceReportUnknownClassFallsBackToAll(t *testing.T) {
	db := newTestDB(t)
	turma := mustClass(t, db, "Turma Infantil")
	ana := mustMember(t, db, "Ana")
	mustStudent(t, db, ana.MemberID, turma.SchoolClassID)

	unknown := uuid.New()
	rep, err := BuildAttendanceReport(db, &unknown, day(2024, time.June, 2))
	if err != nil {
		t.Fatalf("BuildAttendanceReport: %v", err)
	}
	if rep.ClassName != "Todas as Turmas" {
		t.Errorf("ClassName = %q, esperado degradar para todas", rep.ClassName)
	}
	if len(rep.Lines) != 1 {
		t.Errorf("Lines = %d, esperado 1", len(rep.Lines))
	}
}

func TestBuildStudentRoster(t *testing.T) {
	db := newTestDB(t)
	infantil := mustClass(t, db, "Turma Infantil")
	jovens := mustClass(t, db, "Turma Jovens")
	ana := mustMember(t, db, "Ana")
	bruno := mustMember(t, db, "Bruno")
	carla := mustMember(t, db, "Carla")

	mustStudent(t, db, ana.MemberID, infantil.SchoolClassID)
	mustStudent(t, db, bruno.MemberID, infantil.SchoolClassID)
	mustStudent(t, db, carla.MemberID, jovens.SchoolClassID)

	rep, err := BuildStudentRoster(db)
	if err != nil {
		t.Fatalf("BuildStudentRoster: %v", err)
	}
	if rep.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, esperado 3", rep.TotalStudents)
	}
	if len(rep.Classes) != 2 {
		t.Fatalf("Classes = %d, esperado 2", len(rep.Classes))
	}
	if rep.Classes[0].ClassName != "Turma Infantil" || rep.Classes[0].StudentCount != 2 {
		t.Errorf("Classes[0] = %+v", rep.Classes[0])
	}
}

func TestBuildMemberStatistics(t *testing.T) {
	db := newTestDB(t)

	f := "F"
	m := "M"
	casado := "casado"
	members := []memberModel.MemberModel{
		{MemberName: "Ana", MemberType: "membro", MemberStatus: "ativo", MemberGender: &f, MemberMaritalStatus: &casado},
		{MemberName: "Bruno", MemberType: "membro", MemberStatus: "ativo", MemberGender: &m},
		{MemberName: "Carla", MemberType: "visitante", MemberStatus: "visitante", MemberGender: &f},
	}
	for i := range members {
		if err := db.Create(&members[i]).Error; err != nil {
			t.Fatalf("criando membro: %v", err)
		}
	}

	rep, err := BuildMemberStatistics(db)
	if err != nil {
		t.Fatalf("BuildMemberStatistics: %v", err)
	}
	if rep.TotalMembers != 3 {
		t.Errorf("TotalMembers = %d, esperado 3", rep.TotalMembers)
	}
	// maior contagem primeiro
	if rep.ByStatus[0].Label != "ativo" || rep.ByStatus[0].Count != 2 {
		t.Errorf("ByStatus[0] = %+v", rep.ByStatus[0])
	}
	if rep.ByGender[0].Label != "F" || rep.ByGender[0].Count != 2 {
		t.Errorf("ByGender[0] = %+v", rep.ByGender[0])
	}
	foundNI := false
	for _, gc := range rep.ByMaritalStatus {
		if gc.Label == "Não informado" && gc.Count == 2 {
			foundNI = true
		}
	}
	if !foundNI {
		t.Errorf("estado civil ausente deveria agrupar em 'Não informado': %+v", rep.ByMaritalStatus)
	}
}

func TestBuildBirthdayReport(t *testing.T) {
	db := newTestDB(t)

	birth := func(y int, m time.Month, d int) *datatypes.Date {
		dd := datatypes.Date(day(y, m, d))
		return &dd
	}
	members := []memberModel.MemberModel{
		{MemberName: "Ana", MemberType: "membro", MemberStatus: "ativo", MemberBirthDate: birth(1990, time.June, 20)},
		{MemberName: "Bruno", MemberType: "membro", MemberStatus: "ativo", MemberBirthDate: birth(1985, time.June, 3)},
		{MemberName: "Carla", MemberType: "membro", MemberStatus: "ativo", MemberBirthDate: birth(2000, time.July, 1)},
		{MemberName: "Davi", MemberType: "membro", MemberStatus: "ativo"},
	}
	for i := range members {
		if err := db.Create(&members[i]).Error; err != nil {
			t.Fatalf("criando membro: %v", err)
		}
	}

	rep, err := BuildBirthdayReport(db, 6)
	if err != nil {
		t.Fatalf("BuildBirthdayReport: %v", err)
	}
	if len(rep.Lines) != 2 {
		t.Fatalf("Lines = %d, esperado 2", len(rep.Lines))
	}
	// ordenado por dia do mês
	if rep.Lines[0].MemberName != "Bruno" || rep.Lines[0].Day != 3 {
		t.Errorf("Lines[0] = %+v", rep.Lines[0])
	}
	if rep.Lines[1].MemberName != "Ana" || rep.Lines[1].Day != 20 {
		t.Errorf("Lines[1] = %+v", rep.Lines[1])
	}
}
