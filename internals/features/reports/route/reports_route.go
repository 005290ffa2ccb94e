package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templodigital_backend/internals/constants"
	reportController "templodigital_backend/internals/features/reports/controller"
	authMiddleware "templodigital_backend/internals/middlewares/auth"
)

// Relatórios e exportações: leitura para qualquer usuário autenticado
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	repCtrl := &reportController.ReportController{DB: db}
	expCtrl := &reportController.ExportController{DB: db}
	accCtrl := &reportController.AccountabilityController{DB: db}

	reports := r.Group("/reports")
	reports.Get("/monthly-movement", repCtrl.MonthlyMovement)
	reports.Get("/monthly-movement/export/xlsx", expCtrl.MonthlyMovementXLSX)
	reports.Get("/monthly-movement/export/pdf", expCtrl.MonthlyMovementPDF)
	reports.Get("/dre", repCtrl.DRE)
	reports.Get("/dre/export/xlsx", expCtrl.DREXLSX)
	reports.Get("/dre/export/pdf", expCtrl.DREPDF)
	reports.Get("/balance", repCtrl.Balance)
	reports.Get("/balance/export/xlsx", expCtrl.BalanceXLSX)
	reports.Get("/balance/export/pdf", expCtrl.BalancePDF)
	reports.Get("/attendance", repCtrl.Attendance)
	reports.Get("/attendance/export/xlsx", expCtrl.AttendanceXLSX)
	reports.Get("/attendance/export/pdf", expCtrl.AttendancePDF)
	reports.Get("/student-roster", repCtrl.StudentRoster)
	reports.Get("/student-roster/export/xlsx", expCtrl.StudentRosterXLSX)
	reports.Get("/student-roster/export/pdf", expCtrl.StudentRosterPDF)
	reports.Get("/member-statistics", repCtrl.MemberStatistics)
	reports.Get("/member-statistics/export/xlsx", expCtrl.MemberStatisticsXLSX)
	reports.Get("/member-statistics/export/pdf", expCtrl.MemberStatisticsPDF)
	reports.Get("/birthdays", repCtrl.Birthdays)
	reports.Get("/contributions", repCtrl.Contributions)
	reports.Get("/contributions/export/xlsx", expCtrl.ContributionsXLSX)
	reports.Get("/contributions/export/pdf", expCtrl.ContributionsPDF)
	reports.Get("/category-statement", repCtrl.CategoryStatement)

	r.Get("/dashboard", repCtrl.Dashboard)
	r.Get("/accountability-reports", accCtrl.ListReports)
	r.Get("/accountability-reports/:id", accCtrl.GetReport)
}

// Prestação de contas: mutação restrita à tesouraria
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	accCtrl := &reportController.AccountabilityController{DB: db}

	acc := r.Group("/accountability-reports",
		authMiddleware.OnlyRoles(constants.RoleErrorTreasury("prestação de contas"), constants.TreasuryRoles...),
	)
	acc.Post("/", accCtrl.CreateReport)
	acc.Put("/:id", accCtrl.UpdateReport)
	acc.Delete("/:id", accCtrl.DeleteReport)
}
