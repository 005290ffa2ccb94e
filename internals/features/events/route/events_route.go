package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templodigital_backend/internals/constants"
	eventController "templodigital_backend/internals/features/events/controller"
	authMiddleware "templodigital_backend/internals/middlewares/auth"
)

// Leitura para qualquer usuário autenticado
func EventUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &eventController.EventController{DB: db}

	r.Get("/events", ctrl.ListEvents)
	r.Get("/events/:id", ctrl.GetEvent)
}

// Mutação restrita à secretaria
func EventAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &eventController.EventController{DB: db}

	events := r.Group("/events",
		authMiddleware.OnlyRoles(constants.RoleErrorSecretariat("eventos"), constants.SecretariatRoles...),
	)
	events.Post("/", ctrl.CreateEvent)
	events.Put("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
}
