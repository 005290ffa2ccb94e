package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templodigital_backend/internals/configs"
	churchDTO "templodigital_backend/internals/features/churches/dto"
	churchModel "templodigital_backend/internals/features/churches/model"
	helper "templodigital_backend/internals/helpers"
)

type ChurchConfigurationController struct {
	DB *gorm.DB
}

// GET /api/u/configuration
func (h *ChurchConfigurationController) GetConfiguration(c *fiber.Ctx) error {
	var cfg churchModel.ChurchConfigurationModel
	if err := h.DB.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Configuração ainda não cadastrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar configuração")
	}
	return helper.Success(c, "OK", cfg)
}

// POST /api/a/configuration
// Singleton: recusa criação quando já existe uma configuração.
func (h *ChurchConfigurationController) CreateConfiguration(c *fiber.Ctx) error {
	var req churchDTO.UpsertChurchConfigurationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cfg := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := churchModel.ConfigurationExists(tx)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar configuração")
		}
		if exists {
			return fiber.NewError(fiber.StatusConflict,
				"Só pode existir uma configuração de igreja. Edite a existente.")
		}
		if err := tx.Create(&cfg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar configuração")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Configuração criada com sucesso", cfg)
}

// PUT /api/a/configuration
func (h *ChurchConfigurationController) UpdateConfiguration(c *fiber.Ctx) error {
	var req churchDTO.UpsertChurchConfigurationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cfg churchModel.ChurchConfigurationModel
	if err := h.DB.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Configuração ainda não cadastrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar configuração")
	}

	cfg.ChurchConfigChurchName = req.ChurchName
	cfg.ChurchConfigPresidentPastor = req.PresidentPastor
	cfg.ChurchConfigTreasurerName = req.TreasurerName

	if err := h.DB.Save(&cfg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar configuração")
	}
	return helper.Success(c, "Configuração atualizada com sucesso", cfg)
}

// POST /api/a/configuration/logo — multipart "logo"
func (h *ChurchConfigurationController) UploadLogo(c *fiber.Ctx) error {
	var cfg churchModel.ChurchConfigurationModel
	if err := h.DB.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Configuração ainda não cadastrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar configuração")
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Arquivo de logo ausente")
	}
	path, err := helper.SaveUpload(c, fh, configs.UploadDir, "church_logo")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	cfg.ChurchConfigLogoPath = &path
	if err := h.DB.Save(&cfg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao salvar logo")
	}
	return helper.Success(c, "Logo atualizada com sucesso", cfg)
}
