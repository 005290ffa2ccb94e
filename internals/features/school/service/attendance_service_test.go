package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	memberModel "templodigital_backend/internals/features/members/model"
	schoolModel "templodigital_backend/internals/features/school/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&memberModel.MemberModel{},
		&schoolModel.SchoolClassModel{},
		&schoolModel.StudentModel{},
		&schoolModel.AttendanceModel{},
	); err != nil {
		t.Fatalf("migrando esquema: %v", err)
	}
	return db
}

func seedClassWithStudents(t *testing.T, db *gorm.DB, n int) (schoolModel.SchoolClassModel, []schoolModel.StudentModel) {
	t.Helper()
	class := schoolModel.SchoolClassModel{SchoolClassName: "Turma Teste"}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("criando turma: %v", err)
	}
	students := make([]schoolModel.StudentModel, 0, n)
	for i := 0; i < n; i++ {
		member := memberModel.MemberModel{
			MemberName:   fmt.Sprintf("Aluno %d", i+1),
			MemberType:   "membro",
			MemberStatus: "ativo",
		}
		if err := db.Create(&member).Error; err != nil {
			t.Fatalf("criando membro: %v", err)
		}
		st := schoolModel.StudentModel{
			StudentMemberID: member.MemberID,
			StudentClassID:  class.SchoolClassID,
		}
		if err := db.Create(&st).Error; err != nil {
			t.Fatalf("matriculando aluno: %v", err)
		}
		students = append(students, st)
	}
	return class, students
}

func TestRecordClassAttendanceUpsertIdempotent(t *testing.T) {
	db := newTestDB(t)
	class, students := seedClassWithStudents(t, db, 2)
	date := datatypes.Date(time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC))

	entries := []AttendanceEntry{
		{StudentID: students[0].StudentID, Present: true},
		{StudentID: students[1].StudentID, Present: false},
	}
	if _, err := RecordClassAttendance(db, class.SchoolClassID, date, entries); err != nil {
		t.Fatalf("primeira chamada: %v", err)
	}

	// reenvio do mesmo dia com presença trocada sobrescreve, não duplica
	entries[1].Present = true
	if _, err := RecordClassAttendance(db, class.SchoolClassID, date, entries); err != nil {
		t.Fatalf("segunda chamada: %v", err)
	}

	var count int64
	if err := db.Model(&schoolModel.AttendanceModel{}).Count(&count).Error; err != nil {
		t.Fatalf("contando registros: %v", err)
	}
	if count != 2 {
		t.Errorf("registros = %d, esperado 2 (um por aluno por dia)", count)
	}

	var rec schoolModel.AttendanceModel
	if err := db.Where("attendance_student_id = ?", students[1].StudentID).
		First(&rec).Error; err != nil {
		t.Fatalf("buscando registro: %v", err)
	}
	if !rec.AttendancePresent {
		t.Errorf("reenvio deveria sobrescrever presença para true")
	}
}

func TestRecordClassAttendanceRejectsForeignStudent(t *testing.T) {
	db := newTestDB(t)
	class, students := seedClassWithStudents(t, db, 1)
	date := datatypes.Date(time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC))

	entries := []AttendanceEntry{
		{StudentID: students[0].StudentID, Present: true},
		{StudentID: uuid.New(), Present: true},
	}
	_, err := RecordClassAttendance(db, class.SchoolClassID, date, entries)
	if err == nil {
		t.Fatal("lote com aluno de fora deveria falhar")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Errorf("erro = %v, esperado 400", err)
	}

	// lote parcial não pode ter ficado visível
	var count int64
	if err := db.Model(&schoolModel.AttendanceModel{}).Count(&count).Error; err != nil {
		t.Fatalf("contando registros: %v", err)
	}
	if count != 0 {
		t.Errorf("registros = %d, transação deveria ter revertido tudo", count)
	}
}

func TestRecordClassAttendanceUnknownClass(t *testing.T) {
	db := newTestDB(t)
	date := datatypes.Date(time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC))

	_, err := RecordClassAttendance(db, uuid.New(), date, []AttendanceEntry{
		{StudentID: uuid.New(), Present: true},
	})
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusNotFound {
		t.Errorf("erro = %v, esperado 404", err)
	}
}
