package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templodigital_backend/internals/constants"
	memberController "templodigital_backend/internals/features/members/controller"
	authMiddleware "templodigital_backend/internals/middlewares/auth"
)

// Leitura para qualquer usuário autenticado
func MemberUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &memberController.MemberController{DB: db}

	r.Get("/members", ctrl.ListMembers)
	r.Get("/members/:id", ctrl.GetMember)
}

// Mutação restrita à secretaria
func MemberAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &memberController.MemberController{DB: db}

	members := r.Group("/members",
		authMiddleware.OnlyRoles(constants.RoleErrorSecretariat("membros"), constants.SecretariatRoles...),
	)
	members.Post("/", ctrl.CreateMember)
	members.Put("/:id", ctrl.UpdateMember)
	members.Delete("/:id", ctrl.DeleteMember)
	members.Post("/:id/photo", ctrl.UploadPhoto)
}
