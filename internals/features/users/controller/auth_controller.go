package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"templodigital_backend/internals/configs"
	userDTO "templodigital_backend/internals/features/users/dto"
	userModel "templodigital_backend/internals/features/users/model"
	helper "templodigital_backend/internals/helpers"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB *gorm.DB
}

// POST /api/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.Where("user_user_name = ?", req.UserName).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Usuário ou senha inválidos")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao consultar usuário")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Sua conta foi desativada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuário ou senha inválidos")
	}

	access, err := signToken(user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar token")
	}
	refresh, err := signToken(user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar refresh token")
	}

	return helper.Success(c, "Login efetuado", userDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDTO.ToUserResponse(user),
	})
}

// POST /api/refresh
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req userDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token inválido ou expirado")
	}

	rawID, _ := claims["user_id"].(string)
	var user userModel.UserModel
	if err := h.DB.Where("user_id = ?", rawID).First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Sua conta foi desativada")
	}

	access, err := signToken(user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar token")
	}
	refresh, err := signToken(user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar refresh token")
	}

	return helper.Success(c, "Token renovado", userDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDTO.ToUserResponse(user),
	})
}

func signToken(user userModel.UserModel, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserUserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
