package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "templodigital_backend/internals/features/members/model"
)

type CreateMemberRequest struct {
	Name          string  `json:"member_name" validate:"required,min=2,max=255"`
	UserID        *string `json:"member_user_id" validate:"omitempty,uuid"`
	BirthDate     *string `json:"member_birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender        *string `json:"member_gender" validate:"omitempty,oneof=M F O"`
	MaritalStatus *string `json:"member_marital_status" validate:"omitempty,oneof=solteiro casado divorciado viuvo"`
	Address       *string `json:"member_address"`
	Phone         *string `json:"member_phone" validate:"omitempty,max=20"`
	Email         *string `json:"member_email" validate:"omitempty,email"`
	BaptismDate   *string `json:"member_baptism_date" validate:"omitempty,datetime=2006-01-02"`
	JoinDate      *string `json:"member_join_date" validate:"omitempty,datetime=2006-01-02"`
	OriginChurch  *string `json:"member_origin_church" validate:"omitempty,max=255"`
	Type          *string `json:"member_type" validate:"omitempty,oneof=membro visitante obreiro"`
	Role          *string `json:"member_role" validate:"omitempty,max=100"`
	Status        *string `json:"member_status" validate:"omitempty,oneof=ativo inativo transferido disciplina visitante"`
	ChurchID      *string `json:"member_church_id" validate:"omitempty,uuid"`
	Notes         *string `json:"member_notes"`
}

func (r *CreateMemberRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Address)
	trimPtr(&r.Phone)
	trimPtr(&r.Email)
	trimPtr(&r.OriginChurch)
	trimPtr(&r.Role)
	trimPtr(&r.Notes)
}

func (r *CreateMemberRequest) ToModel() m.MemberModel {
	member := m.MemberModel{
		MemberName:          r.Name,
		MemberUserID:        parseUUIDPtr(r.UserID),
		MemberBirthDate:     parseDatePtr(r.BirthDate),
		MemberGender:        r.Gender,
		MemberMaritalStatus: r.MaritalStatus,
		MemberAddress:       r.Address,
		MemberPhone:         r.Phone,
		MemberEmail:         r.Email,
		MemberBaptismDate:   parseDatePtr(r.BaptismDate),
		MemberJoinDate:      parseDatePtr(r.JoinDate),
		MemberOriginChurch:  r.OriginChurch,
		MemberRole:          r.Role,
		MemberChurchID:      parseUUIDPtr(r.ChurchID),
		MemberNotes:         r.Notes,
	}
	member.MemberType = "membro"
	if r.Type != nil {
		member.MemberType = *r.Type
	}
	member.MemberStatus = m.MemberStatusAtivo
	if r.Status != nil {
		member.MemberStatus = *r.Status
	}
	return member
}

type UpdateMemberRequest struct {
	Name          *string `json:"member_name" validate:"omitempty,min=2,max=255"`
	UserID        *string `json:"member_user_id" validate:"omitempty,uuid"`
	BirthDate     *string `json:"member_birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender        *string `json:"member_gender" validate:"omitempty,oneof=M F O"`
	MaritalStatus *string `json:"member_marital_status" validate:"omitempty,oneof=solteiro casado divorciado viuvo"`
	Address       *string `json:"member_address"`
	Phone         *string `json:"member_phone" validate:"omitempty,max=20"`
	Email         *string `json:"member_email" validate:"omitempty,email"`
	BaptismDate   *string `json:"member_baptism_date" validate:"omitempty,datetime=2006-01-02"`
	JoinDate      *string `json:"member_join_date" validate:"omitempty,datetime=2006-01-02"`
	OriginChurch  *string `json:"member_origin_church" validate:"omitempty,max=255"`
	Type          *string `json:"member_type" validate:"omitempty,oneof=membro visitante obreiro"`
	Role          *string `json:"member_role" validate:"omitempty,max=100"`
	Status        *string `json:"member_status" validate:"omitempty,oneof=ativo inativo transferido disciplina visitante"`
	ChurchID      *string `json:"member_church_id" validate:"omitempty,uuid"`
	Notes         *string `json:"member_notes"`
}

func (r *UpdateMemberRequest) Normalize() {
	trimPtr(&r.Name)
	trimPtr(&r.Address)
	trimPtr(&r.Phone)
	trimPtr(&r.Email)
	trimPtr(&r.OriginChurch)
	trimPtr(&r.Role)
	trimPtr(&r.Notes)
}

func (r *UpdateMemberRequest) Apply(member *m.MemberModel) {
	if r.Name != nil {
		member.MemberName = *r.Name
	}
	if id := parseUUIDPtr(r.UserID); id != nil {
		member.MemberUserID = id
	}
	if d := parseDatePtr(r.BirthDate); d != nil {
		member.MemberBirthDate = d
	}
	if r.Gender != nil {
		member.MemberGender = r.Gender
	}
	if r.MaritalStatus != nil {
		member.MemberMaritalStatus = r.MaritalStatus
	}
	if r.Address != nil {
		member.MemberAddress = r.Address
	}
	if r.Phone != nil {
		member.MemberPhone = r.Phone
	}
	if r.Email != nil {
		member.MemberEmail = r.Email
	}
	if d := parseDatePtr(r.BaptismDate); d != nil {
		member.MemberBaptismDate = d
	}
	if d := parseDatePtr(r.JoinDate); d != nil {
		member.MemberJoinDate = d
	}
	if r.OriginChurch != nil {
		member.MemberOriginChurch = r.OriginChurch
	}
	if r.Type != nil {
		member.MemberType = *r.Type
	}
	if r.Role != nil {
		member.MemberRole = r.Role
	}
	if r.Status != nil {
		member.MemberStatus = *r.Status
	}
	if id := parseUUIDPtr(r.ChurchID); id != nil {
		member.MemberChurchID = id
	}
	if r.Notes != nil {
		member.MemberNotes = r.Notes
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

func parseDatePtr(s *string) *datatypes.Date {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

func parseUUIDPtr(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
