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

type SchoolClassController struct {
	DB *gorm.DB
}

var schoolClassSortCols = map[string]string{
	"name":       "school_class_name",
	"created_at": "school_class_created_at",
}

// GET /api/u/school-classes
func (h *SchoolClassController) ListClasses(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "name", "asc")

	q := h.DB.Model(&schoolModel.SchoolClassModel{})
	if search := c.Query("q"); search != "" {
		q = q.Where("lower(school_class_name) LIKE lower(?)", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar turmas")
	}

	var classes []schoolModel.SchoolClassModel
	if err := q.Order(p.OrderClause(schoolClassSortCols, "school_class_name")).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&classes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar turmas")
	}

	return helper.Success(c, "OK", fiber.Map{
		"school_classes": classes,
		"pagination":     helper.BuildPageMeta(p, total),
	})
}

// GET /api/u/school-classes/:id
func (h *SchoolClassController) GetClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var class schoolModel.SchoolClassModel
	if err := h.DB.Where("school_class_id = ?", id).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar turma")
	}
	return helper.Success(c, "OK", class)
}

// POST /api/a/school-classes
func (h *SchoolClassController) CreateClass(c *fiber.Ctx) error {
	var req schoolDTO.CreateSchoolClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	class := req.ToModel()
	if err := h.DB.Create(&class).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar turma")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Turma criada com sucesso", class)
}

// PUT /api/a/school-classes/:id
func (h *SchoolClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req schoolDTO.UpdateSchoolClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var class schoolModel.SchoolClassModel
	if err := h.DB.Where("school_class_id = ?", id).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar turma")
	}

	req.Apply(&class)
	if err := h.DB.Save(&class).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar turma")
	}
	return helper.Success(c, "Turma atualizada com sucesso", class)
}

// DELETE /api/a/school-classes/:id
// Matrículas e presenças da turma caem junto.
func (h *SchoolClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_class_id = ?", id).
			Delete(&schoolModel.AttendanceModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir presenças")
		}
		if err := tx.Where("student_class_id = ?", id).
			Delete(&schoolModel.StudentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir matrículas")
		}
		res := tx.Where("school_class_id = ?", id).Delete(&schoolModel.SchoolClassModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir turma")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Turma excluída com sucesso", nil)
}
