package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "templodigital_backend/internals/features/users/dto"
	userModel "templodigital_backend/internals/features/users/model"
	helper "templodigital_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

var userSortCols = map[string]string{
	"name":       "user_full_name",
	"username":   "user_user_name",
	"created_at": "user_created_at",
}

// GET /api/u/me — perfil do usuário autenticado
func (h *UserController) Me(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}
	return helper.Success(c, "OK", userDTO.ToUserResponse(user))
}

// GET /api/a/users
func (h *UserController) ListUsers(c *fiber.Ctx) error {
	p := helper.ParsePageWith(c, "name", "asc", helper.AdminPageOpts)

	q := h.DB.Model(&userModel.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	var users []userModel.UserModel
	if err := q.Order(p.OrderClause(userSortCols, "user_full_name")).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	out := make([]userDTO.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userDTO.ToUserResponse(u))
	}
	return helper.Success(c, "OK", fiber.Map{
		"users":      out,
		"pagination": helper.BuildPageMeta(p, total),
	})
}

// GET /api/a/users/:id
func (h *UserController) GetUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}
	return helper.Success(c, "OK", userDTO.ToUserResponse(user))
}

// POST /api/a/users
func (h *UserController) CreateUser(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	user := req.ToModel(string(hash))
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("lower(user_user_name) = lower(?)", req.UserName).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar duplicidade")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Nome de usuário já está em uso")
		}
		if err := tx.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar usuário")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuário criado com sucesso", userDTO.ToUserResponse(user))
}

// PUT /api/a/users/:id
func (h *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}

	if req.FullName != nil {
		user.UserFullName = *req.FullName
	}
	if req.Email != nil {
		user.UserEmail = req.Email
	}
	if req.Role != nil {
		user.UserRole = *req.Role
	}
	if req.Phone != nil {
		user.UserPhone = req.Phone
	}
	if req.Address != nil {
		user.UserAddress = req.Address
	}
	if req.IsActive != nil {
		user.UserIsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Falha ao processar senha")
		}
		user.UserPassword = string(hash)
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar usuário")
	}
	return helper.Success(c, "Usuário atualizado com sucesso", userDTO.ToUserResponse(user))
}

// DELETE /api/a/users/:id
func (h *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Where("user_id = ?", id).Delete(&userModel.UserModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao excluir usuário")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return helper.Success(c, "Usuário excluído com sucesso", nil)
}
