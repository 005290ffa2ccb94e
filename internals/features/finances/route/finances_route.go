package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templodigital_backend/internals/constants"
	financeController "templodigital_backend/internals/features/finances/controller"
	authMiddleware "templodigital_backend/internals/middlewares/auth"
)

// Leitura para qualquer usuário autenticado
func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	catCtrl := &financeController.CategoryController{DB: db}
	incCtrl := &financeController.IncomeController{DB: db}
	expCtrl := &financeController.ExpenseController{DB: db}

	r.Get("/categories", catCtrl.ListCategories)
	r.Get("/categories/:id", catCtrl.GetCategory)
	r.Get("/incomes", incCtrl.ListIncomes)
	r.Get("/incomes/:id", incCtrl.GetIncome)
	r.Get("/expenses", expCtrl.ListExpenses)
	r.Get("/expenses/:id", expCtrl.GetExpense)
}

// Mutação restrita à tesouraria
func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	catCtrl := &financeController.CategoryController{DB: db}
	incCtrl := &financeController.IncomeController{DB: db}
	expCtrl := &financeController.ExpenseController{DB: db}

	gate := authMiddleware.OnlyRoles(constants.RoleErrorTreasury("finanças"), constants.TreasuryRoles...)

	categories := r.Group("/categories", gate)
	categories.Post("/", catCtrl.CreateCategory)
	categories.Put("/:id", catCtrl.UpdateCategory)
	categories.Delete("/:id", catCtrl.DeleteCategory)

	incomes := r.Group("/incomes", gate)
	incomes.Post("/", incCtrl.CreateIncome)
	incomes.Put("/:id", incCtrl.UpdateIncome)
	incomes.Delete("/:id", incCtrl.DeleteIncome)
	incomes.Post("/:id/receipt", incCtrl.UploadReceipt)

	expenses := r.Group("/expenses", gate)
	expenses.Post("/", expCtrl.CreateExpense)
	expenses.Put("/:id", expCtrl.UpdateExpense)
	expenses.Delete("/:id", expCtrl.DeleteExpense)
	expenses.Post("/:id/receipt", expCtrl.UploadReceipt)
}
