package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	m "templodigital_backend/internals/features/finances/model"
)

type CreateIncomeRequest struct {
	Date          string          `json:"income_date" validate:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal `json:"income_amount"`
	Description   string          `json:"income_description" validate:"required,min=2,max=255"`
	CategoryID    string          `json:"income_category_id" validate:"required,uuid"`
	ChurchID      string          `json:"income_church_id" validate:"required,uuid"`
	MemberID      *string         `json:"income_member_id" validate:"omitempty,uuid"`
	PaymentMethod *string         `json:"income_payment_method" validate:"omitempty,oneof=dinheiro pix cartao transferencia cheque outro"`
}

func (r *CreateIncomeRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
	trimPtr(&r.PaymentMethod)
}

func (r *CreateIncomeRequest) ToModel() m.IncomeModel {
	income := m.IncomeModel{
		IncomeDate:          mustDate(r.Date),
		IncomeAmount:        r.Amount,
		IncomeDescription:   r.Description,
		IncomeCategoryID:    uuid.MustParse(r.CategoryID),
		IncomeChurchID:      uuid.MustParse(r.ChurchID),
		IncomeMemberID:      parseUUIDPtr(r.MemberID),
		IncomePaymentMethod: m.PaymentMethodDinheiro,
	}
	if r.PaymentMethod != nil {
		income.IncomePaymentMethod = *r.PaymentMethod
	}
	return income
}

type UpdateIncomeRequest struct {
	Date          *string          `json:"income_date" validate:"omitempty,datetime=2006-01-02"`
	Amount        *decimal.Decimal `json:"income_amount"`
	Description   *string          `json:"income_description" validate:"omitempty,min=2,max=255"`
	CategoryID    *string          `json:"income_category_id" validate:"omitempty,uuid"`
	ChurchID      *string          `json:"income_church_id" validate:"omitempty,uuid"`
	MemberID      *string          `json:"income_member_id" validate:"omitempty,uuid"`
	PaymentMethod *string          `json:"income_payment_method" validate:"omitempty,oneof=dinheiro pix cartao transferencia cheque outro"`
}

func (r *UpdateIncomeRequest) Normalize() {
	trimPtr(&r.Description)
	trimPtr(&r.PaymentMethod)
}

func (r *UpdateIncomeRequest) Apply(income *m.IncomeModel) {
	if r.Date != nil {
		income.IncomeDate = mustDate(*r.Date)
	}
	if r.Amount != nil {
		income.IncomeAmount = *r.Amount
	}
	if r.Description != nil {
		income.IncomeDescription = *r.Description
	}
	if r.CategoryID != nil {
		income.IncomeCategoryID = uuid.MustParse(*r.CategoryID)
	}
	if r.ChurchID != nil {
		income.IncomeChurchID = uuid.MustParse(*r.ChurchID)
	}
	if id := parseUUIDPtr(r.MemberID); id != nil {
		income.IncomeMemberID = id
	}
	if r.PaymentMethod != nil {
		income.IncomePaymentMethod = *r.PaymentMethod
	}
}

// mustDate assume string já validada por datetime=2006-01-02.
func mustDate(s string) datatypes.Date {
	t, _ := time.Parse("2006-01-02", s)
	return datatypes.Date(t)
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
