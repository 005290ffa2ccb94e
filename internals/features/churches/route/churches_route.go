package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templodigital_backend/internals/constants"
	churchController "templodigital_backend/internals/features/churches/controller"
	authMiddleware "templodigital_backend/internals/middlewares/auth"
)

// Leitura para qualquer usuário autenticado
func ChurchUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &churchController.ChurchController{DB: db}
	cfgCtrl := &churchController.ChurchConfigurationController{DB: db}

	r.Get("/churches", ctrl.ListChurches)
	r.Get("/churches/:id", ctrl.GetChurch)
	r.Get("/configuration", cfgCtrl.GetConfiguration)
}

// Mutação: secretaria para igrejas, admin para configuração
func ChurchAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &churchController.ChurchController{DB: db}
	cfgCtrl := &churchController.ChurchConfigurationController{DB: db}

	churches := r.Group("/churches",
		authMiddleware.OnlyRoles(constants.RoleErrorSecretariat("igrejas"), constants.SecretariatRoles...),
	)
	churches.Post("/", ctrl.CreateChurch)
	churches.Put("/:id", ctrl.UpdateChurch)
	churches.Delete("/:id", ctrl.DeleteChurch)

	cfg := r.Group("/configuration",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("configuração"), constants.AdminOnly...),
	)
	cfg.Post("/", cfgCtrl.CreateConfiguration)
	cfg.Put("/", cfgCtrl.UpdateConfiguration)
	cfg.Post("/logo", cfgCtrl.UploadLogo)
}
