package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	financeDTO "templodigital_backend/internals/features/finances/dto"
	financeModel "templodigital_backend/internals/features/finances/model"
	helper "templodigital_backend/internals/helpers"
)

type CategoryController struct {
	DB *gorm.DB
}

var categorySortCols = map[string]string{
	"name": "category_name",
	"type": "category_type",
}

// GET /api/u/categories
func (h *CategoryController) ListCategories(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "name", "asc")

	q := h.DB.Model(&financeModel.CategoryModel{})
	if t := c.Query("type"); t != "" {
		q = q.Where("category_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar categorias")
	}

	var categories []financeModel.CategoryModel
	if err := q.Order(p.OrderClause(categorySortCols, "category_name")).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&categories).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar categorias")
	}

	return helper.Success(c, "OK", fiber.Map{
		"categories": categories,
		"pagination": helper.BuildPageMeta(p, total),
	})
}

// GET /api/u/categories/:id
func (h *CategoryController) GetCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var cat financeModel.CategoryModel
	if err := h.DB.Where("category_id = ?", id).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Categoria não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar categoria")
	}
	return helper.Success(c, "OK", cat)
}

// POST /api/a/categories
func (h *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req financeDTO.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cat := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&financeModel.CategoryModel{}).
			Where("category_name = ?", cat.CategoryName).Count(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar categoria")
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Já existe uma categoria com esse nome")
		}
		if err := tx.Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar categoria")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Categoria criada com sucesso", cat)
}

// PUT /api/a/categories/:id
func (h *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req financeDTO.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cat financeModel.CategoryModel
	if err := h.DB.Where("category_id = ?", id).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Categoria não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar categoria")
	}

	req.Apply(&cat)
	if err := h.DB.Save(&cat).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar categoria")
	}
	return helper.Success(c, "Categoria atualizada com sucesso", cat)
}

// DELETE /api/a/categories/:id
// Recusa exclusão enquanto houver lançamentos vinculados.
func (h *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		inUse, err := financeModel.CategoryInUse(tx, id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar categoria")
		}
		if inUse {
			return fiber.NewError(fiber.StatusConflict,
				"Categoria em uso por entradas ou saídas. Reclassifique antes de excluir.")
		}
		res := tx.Where("category_id = ?", id).Delete(&financeModel.CategoryModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir categoria")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Categoria não encontrada")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Categoria excluída com sucesso", nil)
}
