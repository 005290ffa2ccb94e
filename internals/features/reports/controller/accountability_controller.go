package controller

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"templodigital_backend/internals/configs"
	reportDTO "templodigital_backend/internals/features/reports/dto"
	reportModel "templodigital_backend/internals/features/reports/model"
	helper "templodigital_backend/internals/helpers"
)

type AccountabilityController struct {
	DB *gorm.DB
}

var accountabilitySortCols = map[string]string{
	"period":     "accountability_year",
	"created_at": "accountability_created_at",
}

// GET /api/u/accountability-reports
func (h *AccountabilityController) ListReports(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "period", "desc")

	q := h.DB.Model(&reportModel.AccountabilityReportModel{})
	if v := c.Query("year"); v != "" {
		q = q.Where("accountability_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar prestações de contas")
	}

	var reports []reportModel.AccountabilityReportModel
	if err := q.Preload("AccountabilityDocuments").
		Order(p.OrderClause(accountabilitySortCols, "accountability_year") + ", accountability_month desc").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&reports).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar prestações de contas")
	}

	return helper.Success(c, "OK", fiber.Map{
		"accountability_reports": reports,
		"pagination":             helper.BuildPageMeta(p, total),
	})
}

// GET /api/u/accountability-reports/:id
func (h *AccountabilityController) GetReport(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var report reportModel.AccountabilityReportModel
	if err := h.DB.Preload("AccountabilityDocuments").
		Where("accountability_id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Prestação de contas não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar prestação de contas")
	}
	return helper.Success(c, "OK", report)
}

// POST /api/a/accountability-reports — multipart
// Campos do formulário + arquivos "documents". Linha e documentos
// entram na mesma transação.
func (h *AccountabilityController) CreateReport(c *fiber.Ctx) error {
	req, err := parseAccountabilityForm(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Amount.IsNegative() {
		return helper.Error(c, fiber.StatusBadRequest, "Valor não pode ser negativo")
	}

	files := formFiles(c, "documents")
	for _, fh := range files {
		if !helper.IsAllowedDocumentExt(fh.Filename) {
			return helper.Error(c, fiber.StatusBadRequest,
				"Extensão de documento não permitida: "+fh.Filename)
		}
	}

	report := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&reportModel.AccountabilityReportModel{}).
			Where("accountability_month = ? AND accountability_year = ?", report.AccountabilityMonth, report.AccountabilityYear).
			Count(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar período")
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Já existe prestação de contas para esse período")
		}
		if err := tx.Create(&report).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar prestação de contas")
		}
		for _, fh := range files {
			path, err := helper.SaveUpload(c, fh, configs.UploadDir, "accountability")
			if err != nil {
				return err
			}
			doc := reportModel.AccountabilityDocumentModel{
				DocumentReportID: report.AccountabilityID,
				DocumentFilePath: path,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar documento")
			}
			report.AccountabilityDocuments = append(report.AccountabilityDocuments, doc)
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Prestação de contas criada com sucesso", report)
}

// PUT /api/a/accountability-reports/:id — multipart
func (h *AccountabilityController) UpdateReport(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var report reportModel.AccountabilityReportModel
	if err := h.DB.Preload("AccountabilityDocuments").
		Where("accountability_id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Prestação de contas não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar prestação de contas")
	}

	req := parseAccountabilityUpdateForm(c)
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return helper.Error(c, fiber.StatusBadRequest, "Valor não pode ser negativo")
	}

	files := formFiles(c, "documents")
	for _, fh := range files {
		if !helper.IsAllowedDocumentExt(fh.Filename) {
			return helper.Error(c, fiber.StatusBadRequest,
				"Extensão de documento não permitida: "+fh.Filename)
		}
	}

	req.Apply(&report)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&reportModel.AccountabilityReportModel{}).
			Where("accountability_month = ? AND accountability_year = ? AND accountability_id <> ?",
				report.AccountabilityMonth, report.AccountabilityYear, report.AccountabilityID).
			Count(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar período")
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Já existe prestação de contas para esse período")
		}
		if err := tx.Save(&report).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar prestação de contas")
		}
		for _, fh := range files {
			path, err := helper.SaveUpload(c, fh, configs.UploadDir, "accountability")
			if err != nil {
				return err
			}
			doc := reportModel.AccountabilityDocumentModel{
				DocumentReportID: report.AccountabilityID,
				DocumentFilePath: path,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar documento")
			}
			report.AccountabilityDocuments = append(report.AccountabilityDocuments, doc)
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Prestação de contas atualizada com sucesso", report)
}

// DELETE /api/a/accountability-reports/:id
// Documentos vinculados caem junto.
func (h *AccountabilityController) DeleteReport(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_report_id = ?", id).
			Delete(&reportModel.AccountabilityDocumentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir documentos")
		}
		res := tx.Where("accountability_id = ?", id).
			Delete(&reportModel.AccountabilityReportModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir prestação de contas")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Prestação de contas não encontrada")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Prestação de contas excluída com sucesso", nil)
}

func parseAccountabilityForm(c *fiber.Ctx) (*reportDTO.CreateAccountabilityRequest, error) {
	month, err := strconv.Atoi(c.FormValue("accountability_month"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Mês inválido")
	}
	year, err := strconv.Atoi(c.FormValue("accountability_year"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Ano inválido")
	}
	amount, err := decimal.NewFromString(c.FormValue("accountability_amount", "0"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Valor inválido")
	}

	req := &reportDTO.CreateAccountabilityRequest{Month: month, Year: year, Amount: amount}
	if notes := c.FormValue("accountability_notes"); notes != "" {
		req.Notes = &notes
	}
	req.Normalize()
	return req, nil
}

func parseAccountabilityUpdateForm(c *fiber.Ctx) *reportDTO.UpdateAccountabilityRequest {
	req := &reportDTO.UpdateAccountabilityRequest{}
	if v := c.FormValue("accountability_month"); v != "" {
		if month, err := strconv.Atoi(v); err == nil {
			req.Month = &month
		}
	}
	if v := c.FormValue("accountability_year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			req.Year = &year
		}
	}
	if v := c.FormValue("accountability_amount"); v != "" {
		if amount, err := decimal.NewFromString(v); err == nil {
			req.Amount = &amount
		}
	}
	if v := c.FormValue("accountability_notes"); v != "" {
		req.Notes = &v
	}
	req.Normalize()
	return req
}

func formFiles(c *fiber.Ctx, key string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[key]
}
