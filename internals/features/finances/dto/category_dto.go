package dto

import (
	"strings"

	m "templodigital_backend/internals/features/finances/model"
)

type CreateCategoryRequest struct {
	Name        string  `json:"category_name" validate:"required,min=2,max=100"`
	Type        *string `json:"category_type" validate:"omitempty,oneof=entrada saida ambos"`
	Description *string `json:"category_description"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Type)
	trimPtr(&r.Description)
}

func (r *CreateCategoryRequest) ToModel() m.CategoryModel {
	cat := m.CategoryModel{
		CategoryName:        r.Name,
		CategoryType:        m.CategoryTypeAmbos,
		CategoryDescription: r.Description,
	}
	if r.Type != nil {
		cat.CategoryType = *r.Type
	}
	return cat
}

type UpdateCategoryRequest struct {
	Name        *string `json:"category_name" validate:"omitempty,min=2,max=100"`
	Type        *string `json:"category_type" validate:"omitempty,oneof=entrada saida ambos"`
	Description *string `json:"category_description"`
}

func (r *UpdateCategoryRequest) Normalize() {
	trimPtr(&r.Name)
	trimPtr(&r.Type)
	trimPtr(&r.Description)
}

func (r *UpdateCategoryRequest) Apply(cat *m.CategoryModel) {
	if r.Name != nil {
		cat.CategoryName = *r.Name
	}
	if r.Type != nil {
		cat.CategoryType = *r.Type
	}
	if r.Description != nil {
		cat.CategoryDescription = r.Description
	}
}
