package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportDTO "templodigital_backend/internals/features/reports/dto"
	reportService "templodigital_backend/internals/features/reports/service"
	helper "templodigital_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

// GET /api/u/reports/monthly-movement?month=&year=
func (h *ReportController) MonthlyMovement(c *fiber.Ctx) error {
	month, year := reportDTO.MonthYearFromQuery(c)
	rep, err := reportService.BuildMonthlyMovement(h.DB, month, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar movimentação")
	}
	return helper.Success(c, "OK", rep)
}

// GET /api/u/reports/dre?year=
func (h *ReportController) DRE(c *fiber.Ctx) error {
	year := reportDTO.YearFromQuery(c)
	rep, err := reportService.BuildDRE(h.DB, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar DRE")
	}
	return helper.Success(c, "OK", rep)
}

// GET /api/u/reports/balance?end_date=
func (h *ReportController) Balance(c *fiber.Ctx) error {
	endDate := reportDTO.DateFromQuery(c, "end_date")
	rep, err := reportService.BuildBalance(h.DB, endDate)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar balanço")
	}
	return helper.Success(c, "OK", rep)
}

// GET /api/u/reports/attendance?class_id=&class_date=
// ("date" segue aceito como alias)
func (h *ReportController) Attendance(c *fiber.Ctx) error {
	classID := optionalUUID(c, "class_id")
	date := reportDTO.DateFromQuery(c, "class_date", "date")
	rep, err := reportService.BuildAttendanceReport(h.DB, classID, date)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar frequência")
	}
	return helper.Success(c, "OK", rep)
}

// GET /api/u/reports/student-roster
func (h *ReportController) StudentRoster(c *fiber.Ctx) error {
	rep, err := reportService.BuildStudentRoster(h.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar alunos por turma")
	}
	return helper.Success(c, "OK", rep)
}

// GET /api/u/reports/member-statistics
func (h *ReportController) MemberStatistics(c *fiber.Ctx) error {
	rep, err := reportService.BuildMemberStatistics(h.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar estatísticas")
	}
	return helper.Success(c, "OK", rep)
}

// GET /api/u/reports/birthdays?month=
func (h *ReportController) Birthdays(c *fiber.Ctx) error {
	month := reportDTO.MonthFromQuery(c)
	rep, err := reportService.BuildBirthdayReport(h.DB, month)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar aniversariantes")
	}
	return helper.Success(c, "OK", rep)
}

// GET /api/u/reports/contributions?year=&member=
// ("member_id" segue aceito como alias)
func (h *ReportController) Contributions(c *fiber.Ctx) error {
	year := reportDTO.YearFromQuery(c)
	rep, err := reportService.BuildContributionReport(h.DB, year, optionalUUID(c, "member", "member_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar contribuições")
	}
	return helper.Success(c, "OK", rep)
}

// GET /api/u/reports/category-statement?month=&year=
func (h *ReportController) CategoryStatement(c *fiber.Ctx) error {
	month, year := reportDTO.MonthYearFromQuery(c)
	rep, err := reportService.BuildCategoryStatement(h.DB, month, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar movimento por categoria")
	}
	return helper.Success(c, "OK", rep)
}

// GET /api/u/dashboard
func (h *ReportController) Dashboard(c *fiber.Ctx) error {
	rep, err := reportService.BuildDashboardSummary(h.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao montar painel")
	}
	return helper.Success(c, "OK", rep)
}
