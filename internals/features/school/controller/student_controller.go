package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolDTO "templodigital_backend/internals/features/school/dto"
	schoolModel "templodigital_backend/internals/features/school/model"
	helper "templodigital_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

var studentSortCols = map[string]string{
	"enrollment": "student_enrollment_date",
	"created_at": "student_created_at",
}

// GET /api/u/students
// Filtros: class_id, member_id
func (h *StudentController) ListStudents(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "created_at", "desc")

	q := h.DB.Model(&schoolModel.StudentModel{})
	if v := c.Query("class_id"); v != "" {
		q = q.Where("student_class_id = ?", v)
	}
	if v := c.Query("member_id"); v != "" {
		q = q.Where("student_member_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar alunos")
	}

	var students []schoolModel.StudentModel
	if err := q.Order(p.OrderClause(studentSortCols, "student_created_at")).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar alunos")
	}

	return helper.Success(c, "OK", fiber.Map{
		"students":   students,
		"pagination": helper.BuildPageMeta(p, total),
	})
}

// GET /api/u/students/:id
func (h *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var student schoolModel.StudentModel
	if err := h.DB.Where("student_id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}
	return helper.Success(c, "OK", student)
}

// POST /api/a/students — matrícula
func (h *StudentController) EnrollStudent(c *fiber.Ctx) error {
	var req schoolDTO.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&schoolModel.StudentModel{}).
			Where("student_member_id = ? AND student_class_id = ?",
				student.StudentMemberID, student.StudentClassID).
			Count(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar matrícula")
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Membro já matriculado nessa turma")
		}
		if err := tx.Create(&student).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao matricular aluno")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Aluno matriculado com sucesso", student)
}

// PUT /api/a/students/:id — troca de turma ou data de matrícula
func (h *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req schoolDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student schoolModel.StudentModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar aluno")
		}
		req.Apply(&student)

		var n int64
		if err := tx.Model(&schoolModel.StudentModel{}).
			Where("student_member_id = ? AND student_class_id = ? AND student_id <> ?",
				student.StudentMemberID, student.StudentClassID, student.StudentID).
			Count(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar matrícula")
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Membro já matriculado nessa turma")
		}
		if err := tx.Save(&student).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar aluno")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Aluno atualizado com sucesso", student)
}

// DELETE /api/a/students/:id
// Presenças do aluno caem junto.
func (h *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_student_id = ?", id).
			Delete(&schoolModel.AttendanceModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir presenças")
		}
		res := tx.Where("student_id = ?", id).Delete(&schoolModel.StudentModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir aluno")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Aluno excluído com sucesso", nil)
}
