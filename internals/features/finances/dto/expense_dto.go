package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "templodigital_backend/internals/features/finances/model"
)

type CreateExpenseRequest struct {
	Date          string          `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal `json:"expense_amount"`
	Description   string          `json:"expense_description" validate:"required,min=2,max=255"`
	CategoryID    string          `json:"expense_category_id" validate:"required,uuid"`
	ChurchID      string          `json:"expense_church_id" validate:"required,uuid"`
	PaymentMethod *string         `json:"expense_payment_method" validate:"omitempty,oneof=dinheiro pix cartao transferencia cheque outro"`
}

func (r *CreateExpenseRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
	trimPtr(&r.PaymentMethod)
}

func (r *CreateExpenseRequest) ToModel() m.ExpenseModel {
	expense := m.ExpenseModel{
		ExpenseDate:          mustDate(r.Date),
		ExpenseAmount:        r.Amount,
		ExpenseDescription:   r.Description,
		ExpenseCategoryID:    uuid.MustParse(r.CategoryID),
		ExpenseChurchID:      uuid.MustParse(r.ChurchID),
		ExpensePaymentMethod: m.PaymentMethodDinheiro,
	}
	if r.PaymentMethod != nil {
		expense.ExpensePaymentMethod = *r.PaymentMethod
	}
	return expense
}

type UpdateExpenseRequest struct {
	Date          *string          `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`
	Amount        *decimal.Decimal `json:"expense_amount"`
	Description   *string          `json:"expense_description" validate:"omitempty,min=2,max=255"`
	CategoryID    *string          `json:"expense_category_id" validate:"omitempty,uuid"`
	ChurchID      *string          `json:"expense_church_id" validate:"omitempty,uuid"`
	PaymentMethod *string          `json:"expense_payment_method" validate:"omitempty,oneof=dinheiro pix cartao transferencia cheque outro"`
}

func (r *UpdateExpenseRequest) Normalize() {
	trimPtr(&r.Description)
	trimPtr(&r.PaymentMethod)
}

func (r *UpdateExpenseRequest) Apply(expense *m.ExpenseModel) {
	if r.Date != nil {
		expense.ExpenseDate = mustDate(*r.Date)
	}
	if r.Amount != nil {
		expense.ExpenseAmount = *r.Amount
	}
	if r.Description != nil {
		expense.ExpenseDescription = *r.Description
	}
	if r.CategoryID != nil {
		expense.ExpenseCategoryID = uuid.MustParse(*r.CategoryID)
	}
	if r.ChurchID != nil {
		expense.ExpenseChurchID = uuid.MustParse(*r.ChurchID)
	}
	if r.PaymentMethod != nil {
		expense.ExpensePaymentMethod = *r.PaymentMethod
	}
}
