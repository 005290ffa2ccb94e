package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "templodigital_backend/internals/features/users/model"
)

/* =========================================================
   AUTH
   ========================================================= */

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateUserRequest struct {
	UserName string  `json:"user_user_name" validate:"required,min=3,max=60"`
	FullName string  `json:"user_full_name" validate:"required,min=3,max=255"`
	Email    *string `json:"user_email" validate:"omitempty,email"`
	Password string  `json:"user_password" validate:"required,min=6,max=72"`
	Role     string  `json:"user_role" validate:"required,oneof=admin pastor secretario tesoureiro lider membro"`
	Phone    *string `json:"user_phone" validate:"omitempty,max=20"`
	Address  *string `json:"user_address"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.ToLower(strings.TrimSpace(r.UserName))
	r.FullName = strings.TrimSpace(r.FullName)
	trimPtr(&r.Email)
	trimPtr(&r.Phone)
	trimPtr(&r.Address)
}

func (r *CreateUserRequest) ToModel(passwordHash string) m.UserModel {
	return m.UserModel{
		UserUserName: r.UserName,
		UserFullName: r.FullName,
		UserEmail:    r.Email,
		UserPassword: passwordHash,
		UserRole:     r.Role,
		UserPhone:    r.Phone,
		UserAddress:  r.Address,
		UserIsActive: true,
	}
}

type UpdateUserRequest struct {
	FullName *string `json:"user_full_name" validate:"omitempty,min=3,max=255"`
	Email    *string `json:"user_email" validate:"omitempty,email"`
	Password *string `json:"user_password" validate:"omitempty,min=6,max=72"`
	Role     *string `json:"user_role" validate:"omitempty,oneof=admin pastor secretario tesoureiro lider membro"`
	Phone    *string `json:"user_phone" validate:"omitempty,max=20"`
	Address  *string `json:"user_address"`
	IsActive *bool   `json:"user_is_active"`
}

func (r *UpdateUserRequest) Normalize() {
	trimPtr(&r.FullName)
	trimPtr(&r.Email)
	trimPtr(&r.Phone)
	trimPtr(&r.Address)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_user_name"`
	FullName  string    `json:"user_full_name"`
	Email     *string   `json:"user_email,omitempty"`
	Role      string    `json:"user_role"`
	Phone     *string   `json:"user_phone,omitempty"`
	Address   *string   `json:"user_address,omitempty"`
	IsActive  bool      `json:"user_is_active"`
	CreatedAt time.Time `json:"user_created_at"`
}

func ToUserResponse(u m.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		UserName:  u.UserUserName,
		FullName:  u.UserFullName,
		Email:     u.UserEmail,
		Role:      u.UserRole,
		Phone:     u.UserPhone,
		Address:   u.UserAddress,
		IsActive:  u.UserIsActive,
		CreatedAt: u.UserCreatedAt,
	}
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
