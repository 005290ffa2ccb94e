package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templodigital_backend/internals/configs"
	financeDTO "templodigital_backend/internals/features/finances/dto"
	financeModel "templodigital_backend/internals/features/finances/model"
	helper "templodigital_backend/internals/helpers"
)

type IncomeController struct {
	DB *gorm.DB
}

var incomeSortCols = map[string]string{
	"date":       "income_date",
	"amount":     "income_amount",
	"created_at": "income_created_at",
}

// GET /api/u/incomes
// Filtros: category_id, church_id, member_id, start, end (YYYY-MM-DD)
func (h *IncomeController) ListIncomes(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "date", "desc")

	q := h.DB.Model(&financeModel.IncomeModel{})
	if v := c.Query("category_id"); v != "" {
		q = q.Where("income_category_id = ?", v)
	}
	if v := c.Query("church_id"); v != "" {
		q = q.Where("income_church_id = ?", v)
	}
	if v := c.Query("member_id"); v != "" {
		q = q.Where("income_member_id = ?", v)
	}
	if v := c.Query("start"); v != "" {
		q = q.Where("income_date >= ?", v)
	}
	if v := c.Query("end"); v != "" {
		q = q.Where("income_date <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar entradas")
	}

	var incomes []financeModel.IncomeModel
	if err := q.Order(p.OrderClause(incomeSortCols, "income_date")).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&incomes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar entradas")
	}

	return helper.Success(c, "OK", fiber.Map{
		"incomes":    incomes,
		"pagination": helper.BuildPageMeta(p, total),
	})
}

// GET /api/u/incomes/:id
func (h *IncomeController) GetIncome(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var income financeModel.IncomeModel
	if err := h.DB.Where("income_id = ?", id).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Entrada não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar entrada")
	}
	return helper.Success(c, "OK", income)
}

// POST /api/a/incomes
func (h *IncomeController) CreateIncome(c *fiber.Ctx) error {
	var req financeDTO.CreateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Amount.IsNegative() {
		return helper.Error(c, fiber.StatusBadRequest, "Valor não pode ser negativo")
	}

	income := req.ToModel()
	if err := h.DB.Create(&income).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar entrada")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Entrada criada com sucesso", income)
}

// PUT /api/a/incomes/:id
func (h *IncomeController) UpdateIncome(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req financeDTO.UpdateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return helper.Error(c, fiber.StatusBadRequest, "Valor não pode ser negativo")
	}

	var income financeModel.IncomeModel
	if err := h.DB.Where("income_id = ?", id).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Entrada não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar entrada")
	}

	req.Apply(&income)
	if err := h.DB.Save(&income).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar entrada")
	}
	return helper.Success(c, "Entrada atualizada com sucesso", income)
}

// DELETE /api/a/incomes/:id
func (h *IncomeController) DeleteIncome(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Where("income_id = ?", id).Delete(&financeModel.IncomeModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao excluir entrada")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Entrada não encontrada")
	}
	return helper.Success(c, "Entrada excluída com sucesso", nil)
}

// POST /api/a/incomes/:id/receipt — multipart "receipt"
func (h *IncomeController) UploadReceipt(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var income financeModel.IncomeModel
	if err := h.DB.Where("income_id = ?", id).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Entrada não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar entrada")
	}

	fh, err := c.FormFile("receipt")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Arquivo de comprovante ausente")
	}
	path, err := helper.SaveUpload(c, fh, configs.UploadDir, "income_receipts")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	income.IncomeReceiptPath = &path
	if err := h.DB.Save(&income).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao salvar comprovante")
	}
	return helper.Success(c, "Comprovante salvo com sucesso", income)
}
