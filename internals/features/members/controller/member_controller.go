package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"templodigital_backend/internals/configs"
	memberDTO "templodigital_backend/internals/features/members/dto"
	memberModel "templodigital_backend/internals/features/members/model"
	schoolModel "templodigital_backend/internals/features/school/model"
	helper "templodigital_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

var memberSortCols = map[string]string{
	"name":       "member_name",
	"join_date":  "member_join_date",
	"created_at": "member_created_at",
}

// GET /api/u/members
// Filtros: status, type, church_id, q (nome)
func (h *MemberController) ListMembers(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "name", "asc")

	q := h.DB.Model(&memberModel.MemberModel{})
	if s := c.Query("status"); s != "" {
		q = q.Where("member_status = ?", s)
	}
	if t := c.Query("type"); t != "" {
		q = q.Where("member_type = ?", t)
	}
	if church := c.Query("church_id"); church != "" {
		q = q.Where("member_church_id = ?", church)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("lower(member_name) LIKE lower(?)", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar membros")
	}

	var members []memberModel.MemberModel
	if err := q.Order(p.OrderClause(memberSortCols, "member_name")).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&members).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar membros")
	}

	return helper.Success(c, "OK", fiber.Map{
		"members":    members,
		"pagination": helper.BuildPageMeta(p, total),
	})
}

// GET /api/u/members/:id
func (h *MemberController) GetMember(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var member memberModel.MemberModel
	if err := h.DB.Where("member_id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar membro")
	}
	return helper.Success(c, "OK", member)
}

// POST /api/a/members
func (h *MemberController) CreateMember(c *fiber.Ctx) error {
	var req memberDTO.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	member := req.ToModel()
	if err := h.DB.Create(&member).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar membro")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Membro criado com sucesso", member)
}

// PUT /api/a/members/:id
func (h *MemberController) UpdateMember(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req memberDTO.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var member memberModel.MemberModel
	if err := h.DB.Where("member_id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar membro")
	}

	req.Apply(&member)
	if err := h.DB.Save(&member).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar membro")
	}
	return helper.Success(c, "Membro atualizado com sucesso", member)
}

// DELETE /api/a/members/:id
// Matrículas na escola dominical e presenças do membro caem junto.
func (h *MemberController) DeleteMember(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var studentIDs []uuid.UUID
		if err := tx.Model(&schoolModel.StudentModel{}).
			Where("student_member_id = ?", id).
			Pluck("student_id", &studentIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar matrículas")
		}
		if len(studentIDs) > 0 {
			if err := tx.Where("attendance_student_id IN ?", studentIDs).
				Delete(&schoolModel.AttendanceModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir presenças")
			}
			if err := tx.Where("student_member_id = ?", id).
				Delete(&schoolModel.StudentModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir matrículas")
			}
		}
		res := tx.Where("member_id = ?", id).Delete(&memberModel.MemberModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir membro")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Membro não encontrado")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Membro excluído com sucesso", nil)
}

// POST /api/a/members/:id/photo — multipart "photo"
func (h *MemberController) UploadPhoto(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var member memberModel.MemberModel
	if err := h.DB.Where("member_id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar membro")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Arquivo de foto ausente")
	}
	path, err := helper.SaveUpload(c, fh, configs.UploadDir, "member_photos")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	member.MemberPhotoPath = &path
	if err := h.DB.Save(&member).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao salvar foto")
	}
	return helper.Success(c, "Foto atualizada com sucesso", member)
}
