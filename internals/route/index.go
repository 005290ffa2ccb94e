package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	churchRoute "templodigital_backend/internals/features/churches/route"
	eventRoute "templodigital_backend/internals/features/events/route"
	financeRoute "templodigital_backend/internals/features/finances/route"
	memberRoute "templodigital_backend/internals/features/members/route"
	reportRoute "templodigital_backend/internals/features/reports/route"
	schoolRoute "templodigital_backend/internals/features/school/route"
	userRoute "templodigital_backend/internals/features/users/route"
	"templodigital_backend/internals/middlewares"
	authMiddleware "templodigital_backend/internals/middlewares/auth"
)

// SetupRoutes monta a árvore de rotas:
//
//	/api      público (login, refresh)
//	/api/u    autenticado, leitura e relatórios
//	/api/a    autenticado, mutação gated por papel dentro de cada feature
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	registerBaseRoutes(app)

	api := app.Group("/api")

	public := api.Group("", middlewares.LoginRateLimiter())
	userRoute.AuthRoutes(public, db)

	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserProfileRoutes(user, db)
	churchRoute.ChurchUserRoutes(user, db)
	memberRoute.MemberUserRoutes(user, db)
	financeRoute.FinanceUserRoutes(user, db)
	eventRoute.EventUserRoutes(user, db)
	schoolRoute.SchoolUserRoutes(user, db)
	reportRoute.ReportUserRoutes(user, db)

	admin := api.Group("/a", authMiddleware.AuthMiddleware(db))
	userRoute.UserAdminRoutes(admin, db)
	churchRoute.ChurchAdminRoutes(admin, db)
	memberRoute.MemberAdminRoutes(admin, db)
	financeRoute.FinanceAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	schoolRoute.SchoolAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
}
