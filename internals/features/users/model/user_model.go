package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Papéis válidos: admin, pastor, secretario, tesoureiro, lider, membro
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserUserName string    `gorm:"type:varchar(60);not null;uniqueIndex;column:user_user_name" json:"user_user_name"`
	UserFullName string    `gorm:"type:varchar(255);not null;column:user_full_name" json:"user_full_name"`
	UserEmail    *string   `gorm:"type:varchar(255);column:user_email" json:"user_email,omitempty"`
	UserPassword string    `gorm:"type:varchar(250);not null;column:user_password" json:"-"`

	UserRole    string  `gorm:"type:varchar(20);not null;default:'membro';column:user_role" json:"user_role"`
	UserPhone   *string `gorm:"type:varchar(20);column:user_phone" json:"user_phone,omitempty"`
	UserAddress *string `gorm:"type:text;column:user_address" json:"user_address,omitempty"`

	UserProfileImage *string `gorm:"type:text;column:user_profile_image" json:"user_profile_image,omitempty"`

	UserIsActive  bool           `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`
	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
