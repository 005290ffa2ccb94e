package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	churchDTO "templodigital_backend/internals/features/churches/dto"
	churchModel "templodigital_backend/internals/features/churches/model"
	helper "templodigital_backend/internals/helpers"
)

type ChurchController struct {
	DB *gorm.DB
}

var churchSortCols = map[string]string{
	"name":       "church_name",
	"founded":    "church_founded_date",
	"created_at": "church_created_at",
}

// GET /api/u/churches
func (h *ChurchController) ListChurches(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "name", "asc")

	q := h.DB.Model(&churchModel.ChurchModel{})
	if t := c.Query("type"); t != "" {
		q = q.Where("church_type = ?", t)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("lower(church_name) LIKE lower(?)", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar igrejas")
	}

	var churches []churchModel.ChurchModel
	if err := q.Order(p.OrderClause(churchSortCols, "church_name")).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&churches).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar igrejas")
	}

	return helper.Success(c, "OK", fiber.Map{
		"churches":   churches,
		"pagination": helper.BuildPageMeta(p, total),
	})
}

// GET /api/u/churches/:id
func (h *ChurchController) GetChurch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var church churchModel.ChurchModel
	if err := h.DB.Where("church_id = ?", id).First(&church).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Igreja não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar igreja")
	}
	return helper.Success(c, "OK", church)
}

// POST /api/a/churches
func (h *ChurchController) CreateChurch(c *fiber.Ctx) error {
	var req churchDTO.CreateChurchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	church := req.ToModel()
	if err := h.DB.Create(&church).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar igreja")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Igreja criada com sucesso", church)
}

// PUT /api/a/churches/:id
func (h *ChurchController) UpdateChurch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req churchDTO.UpdateChurchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var church churchModel.ChurchModel
	if err := h.DB.Where("church_id = ?", id).First(&church).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Igreja não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar igreja")
	}

	req.Apply(&church)
	if err := h.DB.Save(&church).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar igreja")
	}
	return helper.Success(c, "Igreja atualizada com sucesso", church)
}

// DELETE /api/a/churches/:id
func (h *ChurchController) DeleteChurch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Where("church_id = ?", id).Delete(&churchModel.ChurchModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao excluir igreja")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Igreja não encontrada")
	}
	return helper.Success(c, "Igreja excluída com sucesso", nil)
}
