package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	m "templodigital_backend/internals/features/reports/model"
)

// Multipart: campos do formulário + arquivos "documents".
type CreateAccountabilityRequest struct {
	Month  int             `json:"accountability_month" form:"accountability_month" validate:"required,min=1,max=12"`
	Year   int             `json:"accountability_year" form:"accountability_year" validate:"required,min=1900"`
	Amount decimal.Decimal `json:"accountability_amount" form:"accountability_amount"`
	Notes  *string         `json:"accountability_notes" form:"accountability_notes"`
}

func (r *CreateAccountabilityRequest) Normalize() {
	trimPtr(&r.Notes)
}

func (r *CreateAccountabilityRequest) ToModel() m.AccountabilityReportModel {
	return m.AccountabilityReportModel{
		AccountabilityMonth:  r.Month,
		AccountabilityYear:   r.Year,
		AccountabilityAmount: r.Amount,
		AccountabilityNotes:  r.Notes,
	}
}

type UpdateAccountabilityRequest struct {
	Month  *int             `json:"accountability_month" form:"accountability_month" validate:"omitempty,min=1,max=12"`
	Year   *int             `json:"accountability_year" form:"accountability_year" validate:"omitempty,min=1900"`
	Amount *decimal.Decimal `json:"accountability_amount" form:"accountability_amount"`
	Notes  *string          `json:"accountability_notes" form:"accountability_notes"`
}

func (r *UpdateAccountabilityRequest) Normalize() {
	trimPtr(&r.Notes)
}

func (r *UpdateAccountabilityRequest) Apply(report *m.AccountabilityReportModel) {
	if r.Month != nil {
		report.AccountabilityMonth = *r.Month
	}
	if r.Year != nil {
		report.AccountabilityYear = *r.Year
	}
	if r.Amount != nil {
		report.AccountabilityAmount = *r.Amount
	}
	if r.Notes != nil {
		report.AccountabilityNotes = r.Notes
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
