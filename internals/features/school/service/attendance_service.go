package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	schoolModel "templodigital_backend/internals/features/school/model"
)

type AttendanceEntry struct {
	StudentID uuid.UUID
	Present   bool
}

// RecordClassAttendance grava a chamada de um dia numa única transação.
// Um registro por (aluno, data): reenvio sobrescreve a presença em vez de
// duplicar. Alunos fora da turma invalidam o lote inteiro.
func RecordClassAttendance(db *gorm.DB, classID uuid.UUID, date datatypes.Date, entries []AttendanceEntry) ([]schoolModel.AttendanceModel, error) {
	if len(entries) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Lote de presença vazio")
	}

	var rows []schoolModel.AttendanceModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var class schoolModel.SchoolClassModel
		if err := tx.Where("school_class_id = ?", classID).First(&class).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar turma")
		}

		ids := make([]uuid.UUID, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.StudentID)
		}
		var enrolled int64
		if err := tx.Model(&schoolModel.StudentModel{}).
			Where("student_id IN ? AND student_class_id = ?", ids, classID).
			Count(&enrolled).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao validar alunos")
		}
		if enrolled != int64(len(entries)) {
			return fiber.NewError(fiber.StatusBadRequest, "Lote contém aluno que não pertence à turma")
		}

		now := time.Now()
		rows = make([]schoolModel.AttendanceModel, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, schoolModel.AttendanceModel{
				AttendanceStudentID: e.StudentID,
				AttendanceClassID:   classID,
				AttendanceDate:      date,
				AttendancePresent:   e.Present,
				AttendanceCreatedAt: now,
				AttendanceUpdatedAt: now,
			})
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "attendance_student_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_present", "attendance_class_id", "attendance_updated_at",
			}),
		}).Create(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gravar presença")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
