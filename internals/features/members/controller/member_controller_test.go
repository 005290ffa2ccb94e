package controller

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	memberModel "templodigital_backend/internals/features/members/model"
	reportService "templodigital_backend/internals/features/reports/service"
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

func TestDeleteMemberCascadesEnrollmentAndAttendance(t *testing.T) {
	db := newTestDB(t)

	member := memberModel.MemberModel{
		MemberName:   "João Silva",
		MemberType:   "membro",
		MemberStatus: memberModel.MemberStatusAtivo,
	}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("criando membro: %v", err)
	}
	class := schoolModel.SchoolClassModel{SchoolClassName: "Turma Jovens"}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("criando turma: %v", err)
	}
	student := schoolModel.StudentModel{
		StudentMemberID: member.MemberID,
		StudentClassID:  class.SchoolClassID,
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("matriculando: %v", err)
	}
	att := schoolModel.AttendanceModel{
		AttendanceStudentID: student.StudentID,
		AttendanceClassID:   class.SchoolClassID,
		AttendanceDate:      datatypes.Date(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)),
		AttendancePresent:   true,
	}
	if err := db.Create(&att).Error; err != nil {
		t.Fatalf("criando presença: %v", err)
	}

	app := fiber.New()
	ctrl := &MemberController{DB: db}
	app.Delete("/members/:id", ctrl.DeleteMember)

	req := httptest.NewRequest("DELETE", "/members/"+member.MemberID.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("executando request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, esperado 200", resp.StatusCode)
	}

	var students, attendances, members int64
	db.Model(&schoolModel.StudentModel{}).Count(&students)
	db.Model(&schoolModel.AttendanceModel{}).Count(&attendances)
	db.Model(&memberModel.MemberModel{}).Count(&members)
	if students != 0 || attendances != 0 || members != 0 {
		t.Errorf("sobras após exclusão: students=%d attendances=%d members=%d",
			students, attendances, members)
	}

	// relatórios não podem mostrar o aluno fantasma
	roster, err := reportService.BuildStudentRoster(db)
	if err != nil {
		t.Fatalf("montando roster: %v", err)
	}
	if roster.TotalStudents != 0 {
		t.Errorf("TotalStudents = %d, esperado 0", roster.TotalStudents)
	}
}
