package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	schoolDTO "templodigital_backend/internals/features/school/dto"
	schoolModel "templodigital_backend/internals/features/school/model"
	schoolService "templodigital_backend/internals/features/school/service"
	helper "templodigital_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

// POST /api/a/school-classes/:id/attendance
// Chamada do dia inteiro em lote, atômica e idempotente.
func (h *AttendanceController) RecordAttendance(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req schoolDTO.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	t, _ := time.Parse("2006-01-02", req.Date)
	entries := make([]schoolService.AttendanceEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		id, err := uuid.Parse(e.StudentID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "student_id inválido no lote")
		}
		entries = append(entries, schoolService.AttendanceEntry{
			StudentID: id,
			Present:   e.Present,
		})
	}

	rows, err := schoolService.RecordClassAttendance(h.DB, classID, datatypes.Date(t), entries)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Presença registrada com sucesso", fiber.Map{
		"attendances": rows,
	})
}

// GET /api/u/school-classes/:id/attendance?date=YYYY-MM-DD
func (h *AttendanceController) ListClassAttendance(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := h.DB.Model(&schoolModel.AttendanceModel{}).
		Where("attendance_class_id = ?", classID)
	if v := c.Query("date"); v != "" {
		q = q.Where("attendance_date = ?", v)
	}

	var rows []schoolModel.AttendanceModel
	if err := q.Order("attendance_date desc").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar presenças")
	}
	return helper.Success(c, "OK", fiber.Map{"attendances": rows})
}
