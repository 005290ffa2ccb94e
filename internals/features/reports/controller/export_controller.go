package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	reportDTO "templodigital_backend/internals/features/reports/dto"
	"templodigital_backend/internals/features/reports/export"
	reportService "templodigital_backend/internals/features/reports/service"
	helper "templodigital_backend/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func sendXLSX(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar planilha")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func sendPDF(c *fiber.Ctx, pdf *gofpdf.Fpdf, filename string) error {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

// GET /api/u/reports/monthly-movement/export/xlsx
func (h *ExportController) MonthlyMovementXLSX(c *fiber.Ctx) error {
	month, year := reportDTO.MonthYearFromQuery(c)
	rep, err := reportService.BuildMonthlyMovement(h.DB, month, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar movimentação")
	}
	f, err := export.MonthlyMovementXLSX(export.LoadBranding(h.DB), rep)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar planilha")
	}
	return sendXLSX(c, f, fmt.Sprintf("movimentacoes_%d_%02d.xlsx", year, month))
}

// GET /api/u/reports/monthly-movement/export/pdf
func (h *ExportController) MonthlyMovementPDF(c *fiber.Ctx) error {
	month, year := reportDTO.MonthYearFromQuery(c)
	rep, err := reportService.BuildMonthlyMovement(h.DB, month, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar movimentação")
	}
	pdf := export.MonthlyMovementPDF(export.LoadBranding(h.DB), rep)
	return sendPDF(c, pdf, fmt.Sprintf("movimentacoes_%d_%02d.pdf", year, month))
}

// GET /api/u/reports/dre/export/xlsx
func (h *ExportController) DREXLSX(c *fiber.Ctx) error {
	year := reportDTO.YearFromQuery(c)
	rep, err := reportService.BuildDRE(h.DB, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar DRE")
	}
	f, err := export.DREXLSX(export.LoadBranding(h.DB), rep)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar planilha")
	}
	return sendXLSX(c, f, fmt.Sprintf("dre_%d.xlsx", year))
}

// GET /api/u/reports/dre/export/pdf
func (h *ExportController) DREPDF(c *fiber.Ctx) error {
	year := reportDTO.YearFromQuery(c)
	rep, err := reportService.BuildDRE(h.DB, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar DRE")
	}
	pdf := export.DREPDF(export.LoadBranding(h.DB), rep)
	return sendPDF(c, pdf, fmt.Sprintf("dre_%d.pdf", year))
}

// GET /api/u/reports/balance/export/xlsx
func (h *ExportController) BalanceXLSX(c *fiber.Ctx) error {
	endDate := reportDTO.DateFromQuery(c, "end_date")
	rep, err := reportService.BuildBalance(h.DB, endDate)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar balanço")
	}
	f, err := export.BalanceXLSX(export.LoadBranding(h.DB), rep)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar planilha")
	}
	return sendXLSX(c, f, "balanco_"+endDate.Format("20060102")+".xlsx")
}

// GET /api/u/reports/balance/export/pdf
func (h *ExportController) BalancePDF(c *fiber.Ctx) error {
	endDate := reportDTO.DateFromQuery(c, "end_date")
	rep, err := reportService.BuildBalance(h.DB, endDate)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar balanço")
	}
	pdf := export.BalancePDF(export.LoadBranding(h.DB), rep)
	return sendPDF(c, pdf, "balanco_"+endDate.Format("20060102")+".pdf")
}

// GET /api/u/reports/attendance/export/xlsx
func (h *ExportController) AttendanceXLSX(c *fiber.Ctx) error {
	classID := optionalUUID(c, "class_id")
	date := reportDTO.DateFromQuery(c, "class_date", "date")
	rep, err := reportService.BuildAttendanceReport(h.DB, classID, date)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar frequência")
	}
	f, err := export.AttendanceXLSX(export.LoadBranding(h.DB), rep)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar planilha")
	}
	name := "frequencia_" + date.Format("20060102") + "_" + slug(rep.ClassName) + ".xlsx"
	return sendXLSX(c, f, name)
}

// GET /api/u/reports/attendance/export/pdf
func (h *ExportController) AttendancePDF(c *fiber.Ctx) error {
	classID := optionalUUID(c, "class_id")
	date := reportDTO.DateFromQuery(c, "class_date", "date")
	rep, err := reportService.BuildAttendanceReport(h.DB, classID, date)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar frequência")
	}
	pdf := export.AttendancePDF(export.LoadBranding(h.DB), rep)
	name := "frequencia_" + date.Format("20060102") + "_" + slug(rep.ClassName) + ".pdf"
	return sendPDF(c, pdf, name)
}

// GET /api/u/reports/student-roster/export/xlsx
func (h *ExportController) StudentRosterXLSX(c *fiber.Ctx) error {
	rep, err := reportService.BuildStudentRoster(h.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar alunos por turma")
	}
	f, err := export.RosterXLSX(export.LoadBranding(h.DB), rep)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar planilha")
	}
	return sendXLSX(c, f, "alunos_por_turma.xlsx")
}

// GET /api/u/reports/student-roster/export/pdf
func (h *ExportController) StudentRosterPDF(c *fiber.Ctx) error {
	rep, err := reportService.BuildStudentRoster(h.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar alunos por turma")
	}
	pdf := export.RosterPDF(export.LoadBranding(h.DB), rep)
	return sendPDF(c, pdf, "alunos_por_turma.pdf")
}

// GET /api/u/reports/member-statistics/export/xlsx
func (h *ExportController) MemberStatisticsXLSX(c *fiber.Ctx) error {
	rep, err := reportService.BuildMemberStatistics(h.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar estatísticas")
	}
	f, err := export.MemberStatsXLSX(export.LoadBranding(h.DB), rep)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar planilha")
	}
	return sendXLSX(c, f, "membros_estatisticas.xlsx")
}

// GET /api/u/reports/member-statistics/export/pdf
func (h *ExportController) MemberStatisticsPDF(c *fiber.Ctx) error {
	rep, err := reportService.BuildMemberStatistics(h.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar estatísticas")
	}
	pdf := export.MemberStatsPDF(export.LoadBranding(h.DB), rep)
	return sendPDF(c, pdf, "membros_estatisticas.pdf")
}

// GET /api/u/reports/contributions/export/xlsx
func (h *ExportController) ContributionsXLSX(c *fiber.Ctx) error {
	year := reportDTO.YearFromQuery(c)
	rep, err := reportService.BuildContributionReport(h.DB, year, optionalUUID(c, "member", "member_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar contribuições")
	}
	f, err := export.ContributionXLSX(export.LoadBranding(h.DB), rep)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar planilha")
	}
	return sendXLSX(c, f, fmt.Sprintf("contribuicoes_%d.xlsx", year))
}

// GET /api/u/reports/contributions/export/pdf
func (h *ExportController) ContributionsPDF(c *fiber.Ctx) error {
	year := reportDTO.YearFromQuery(c)
	rep, err := reportService.BuildContributionReport(h.DB, year, optionalUUID(c, "member", "member_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar contribuições")
	}
	pdf := export.ContributionPDF(export.LoadBranding(h.DB), rep)
	return sendPDF(c, pdf, fmt.Sprintf("contribuicoes_%d.pdf", year))
}

func optionalUUID(c *fiber.Ctx, keys ...string) *uuid.UUID {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			if id, err := uuid.Parse(v); err == nil {
				return &id
			}
		}
	}
	return nil
}
