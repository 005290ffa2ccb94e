package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	m "templodigital_backend/internals/features/churches/model"
)

type CreateChurchRequest struct {
	Name        string  `json:"church_name" validate:"required,min=2,max=255"`
	Address     *string `json:"church_address"`
	Phone       *string `json:"church_phone" validate:"omitempty,max=20"`
	Email       *string `json:"church_email" validate:"omitempty,email"`
	FoundedDate *string `json:"church_founded_date" validate:"omitempty,datetime=2006-01-02"`
	Schedule    *string `json:"church_schedule"`
	Type        *string `json:"church_type" validate:"omitempty,oneof=sede filial"`
	Description *string `json:"church_description"`
}

func (r *CreateChurchRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Address)
	trimPtr(&r.Phone)
	trimPtr(&r.Email)
	trimPtr(&r.Schedule)
	trimPtr(&r.Type)
	trimPtr(&r.Description)
}

func (r *CreateChurchRequest) ToModel() m.ChurchModel {
	return m.ChurchModel{
		ChurchName:        r.Name,
		ChurchAddress:     r.Address,
		ChurchPhone:       r.Phone,
		ChurchEmail:       r.Email,
		ChurchFoundedDate: parseDatePtr(r.FoundedDate),
		ChurchSchedule:    r.Schedule,
		ChurchType:        r.Type,
		ChurchDescription: r.Description,
	}
}

type UpdateChurchRequest struct {
	Name        *string `json:"church_name" validate:"omitempty,min=2,max=255"`
	Address     *string `json:"church_address"`
	Phone       *string `json:"church_phone" validate:"omitempty,max=20"`
	Email       *string `json:"church_email" validate:"omitempty,email"`
	FoundedDate *string `json:"church_founded_date" validate:"omitempty,datetime=2006-01-02"`
	Schedule    *string `json:"church_schedule"`
	Type        *string `json:"church_type" validate:"omitempty,oneof=sede filial"`
	Description *string `json:"church_description"`
}

func (r *UpdateChurchRequest) Normalize() {
	trimPtr(&r.Name)
	trimPtr(&r.Address)
	trimPtr(&r.Phone)
	trimPtr(&r.Email)
	trimPtr(&r.Schedule)
	trimPtr(&r.Type)
	trimPtr(&r.Description)
}

func (r *UpdateChurchRequest) Apply(church *m.ChurchModel) {
	if r.Name != nil {
		church.ChurchName = *r.Name
	}
	if r.Address != nil {
		church.ChurchAddress = r.Address
	}
	if r.Phone != nil {
		church.ChurchPhone = r.Phone
	}
	if r.Email != nil {
		church.ChurchEmail = r.Email
	}
	if d := parseDatePtr(r.FoundedDate); d != nil {
		church.ChurchFoundedDate = d
	}
	if r.Schedule != nil {
		church.ChurchSchedule = r.Schedule
	}
	if r.Type != nil {
		church.ChurchType = r.Type
	}
	if r.Description != nil {
		church.ChurchDescription = r.Description
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
