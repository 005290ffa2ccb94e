package dto

import (
	"strings"

	m "templodigital_backend/internals/features/churches/model"
)

type UpsertChurchConfigurationRequest struct {
	ChurchName      string  `json:"church_config_church_name" validate:"required,min=2,max=255"`
	PresidentPastor *string `json:"church_config_president_pastor" validate:"omitempty,max=255"`
	TreasurerName   *string `json:"church_config_treasurer_name" validate:"omitempty,max=255"`
}

func (r *UpsertChurchConfigurationRequest) Normalize() {
	r.ChurchName = strings.TrimSpace(r.ChurchName)
	trimPtr(&r.PresidentPastor)
	trimPtr(&r.TreasurerName)
}

func (r *UpsertChurchConfigurationRequest) ToModel() m.ChurchConfigurationModel {
	return m.ChurchConfigurationModel{
		ChurchConfigChurchName:      r.ChurchName,
		ChurchConfigPresidentPastor: r.PresidentPastor,
		ChurchConfigTreasurerName:   r.TreasurerName,
	}
}
