package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templodigital_backend/internals/constants"
	userController "templodigital_backend/internals/features/users/controller"
	authMiddleware "templodigital_backend/internals/middlewares/auth"
)

// Rotas públicas de autenticação (com limiter próprio no index)
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &userController.AuthController{DB: db}
	r.Post("/login", ctrl.Login)
	r.Post("/refresh", ctrl.Refresh)
}

// Perfil do usuário autenticado
func UserProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &userController.UserController{DB: db}
	r.Get("/me", ctrl.Me)
}

// CRUD de usuários — somente admin
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &userController.UserController{DB: db}

	users := r.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("usuários"), constants.AdminOnly...),
	)
	users.Get("/", ctrl.ListUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Post("/", ctrl.CreateUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}
