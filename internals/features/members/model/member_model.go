package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MemberStatusAtivo       = "ativo"
	MemberStatusInativo     = "inativo"
	MemberStatusTransferido = "transferido"
	MemberStatusDisciplina  = "disciplina"
	MemberStatusVisitante   = "visitante"
)

type MemberModel struct {
	MemberID uuid.UUID `gorm:"type:uuid;primaryKey;column:member_id" json:"member_id"`

	// conta de sistema opcional (SET NULL na exclusão do usuário)
	MemberUserID *uuid.UUID `gorm:"type:uuid;column:member_user_id" json:"member_user_id,omitempty"`

	MemberName      string          `gorm:"type:varchar(255);not null;index;column:member_name" json:"member_name"`
	MemberBirthDate *datatypes.Date `gorm:"column:member_birth_date" json:"member_birth_date,omitempty"`

	// M | F | O
	MemberGender *string `gorm:"type:varchar(1);column:member_gender" json:"member_gender,omitempty"`
	// solteiro | casado | divorciado | viuvo
	MemberMaritalStatus *string `gorm:"type:varchar(15);column:member_marital_status" json:"member_marital_status,omitempty"`

	MemberAddress *string `gorm:"type:text;column:member_address" json:"member_address,omitempty"`
	MemberPhone   *string `gorm:"type:varchar(20);column:member_phone" json:"member_phone,omitempty"`
	MemberEmail   *string `gorm:"type:varchar(255);column:member_email" json:"member_email,omitempty"`

	MemberBaptismDate  *datatypes.Date `gorm:"column:member_baptism_date" json:"member_baptism_date,omitempty"`
	MemberJoinDate     *datatypes.Date `gorm:"column:member_join_date" json:"member_join_date,omitempty"`
	MemberOriginChurch *string         `gorm:"type:varchar(255);column:member_origin_church" json:"member_origin_church,omitempty"`

	// membro | visitante | obreiro
	MemberType string `gorm:"type:varchar(50);not null;default:'membro';column:member_type" json:"member_type"`
	// cargo/função livre (diácono, líder de louvor, ...)
	MemberRole *string `gorm:"type:varchar(100);column:member_role" json:"member_role,omitempty"`
	// ativo | inativo | transferido | disciplina | visitante
	MemberStatus string `gorm:"type:varchar(15);not null;default:'ativo';index;column:member_status" json:"member_status"`

	MemberChurchID *uuid.UUID `gorm:"type:uuid;column:member_church_id" json:"member_church_id,omitempty"`

	MemberPhotoPath *string `gorm:"type:text;column:member_photo_path" json:"member_photo_path,omitempty"`
	MemberNotes     *string `gorm:"type:text;column:member_notes" json:"member_notes,omitempty"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;not null;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time      `gorm:"column:member_updated_at;not null;autoUpdateTime" json:"member_updated_at"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	return nil
}
