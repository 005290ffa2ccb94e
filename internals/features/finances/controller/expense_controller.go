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

type ExpenseController struct {
	DB *gorm.DB
}

var expenseSortCols = map[string]string{
	"date":       "expense_date",
	"amount":     "expense_amount",
	"created_at": "expense_created_at",
}

// GET /api/u/expenses
// Filtros: category_id, church_id, start, end (YYYY-MM-DD)
func (h *ExpenseController) ListExpenses(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "date", "desc")

	q := h.DB.Model(&financeModel.ExpenseModel{})
	if v := c.Query("category_id"); v != "" {
		q = q.Where("expense_category_id = ?", v)
	}
	if v := c.Query("church_id"); v != "" {
		q = q.Where("expense_church_id = ?", v)
	}
	if v := c.Query("start"); v != "" {
		q = q.Where("expense_date >= ?", v)
	}
	if v := c.Query("end"); v != "" {
		q = q.Where("expense_date <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar saídas")
	}

	var expenses []financeModel.ExpenseModel
	if err := q.Order(p.OrderClause(expenseSortCols, "expense_date")).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&expenses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar saídas")
	}

	return helper.Success(c, "OK", fiber.Map{
		"expenses":   expenses,
		"pagination": helper.BuildPageMeta(p, total),
	})
}

// GET /api/u/expenses/:id
func (h *ExpenseController) GetExpense(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var expense financeModel.ExpenseModel
	if err := h.DB.Where("expense_id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Saída não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar saída")
	}
	return helper.Success(c, "OK", expense)
}

// POST /api/a/expenses
func (h *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	var req financeDTO.CreateExpenseRequest
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

	expense := req.ToModel()
	if err := h.DB.Create(&expense).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar saída")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Saída criada com sucesso", expense)
}

// PUT /api/a/expenses/:id
func (h *ExpenseController) UpdateExpense(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req financeDTO.UpdateExpenseRequest
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

	var expense financeModel.ExpenseModel
	if err := h.DB.Where("expense_id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Saída não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar saída")
	}

	req.Apply(&expense)
	if err := h.DB.Save(&expense).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar saída")
	}
	return helper.Success(c, "Saída atualizada com sucesso", expense)
}

// DELETE /api/a/expenses/:id
func (h *ExpenseController) DeleteExpense(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Where("expense_id = ?", id).Delete(&financeModel.ExpenseModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao excluir saída")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Saída não encontrada")
	}
	return helper.Success(c, "Saída excluída com sucesso", nil)
}

// POST /api/a/expenses/:id/receipt — multipart "receipt"
func (h *ExpenseController) UploadReceipt(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var expense financeModel.ExpenseModel
	if err := h.DB.Where("expense_id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Saída não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar saída")
	}

	fh, err := c.FormFile("receipt")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Arquivo de comprovante ausente")
	}
	path, err := helper.SaveUpload(c, fh, configs.UploadDir, "expense_receipts")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	expense.ExpenseReceiptPath = &path
	if err := h.DB.Save(&expense).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao salvar comprovante")
	}
	return helper.Success(c, "Comprovante salvo com sucesso", expense)
}
