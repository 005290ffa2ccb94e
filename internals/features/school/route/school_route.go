package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templodigital_backend/internals/constants"
	schoolController "templodigital_backend/internals/features/school/controller"
	authMiddleware "templodigital_backend/internals/middlewares/auth"
)

// Leitura para qualquer usuário autenticado
func SchoolUserRoutes(r fiber.Router, db *gorm.DB) {
	classCtrl := &schoolController.SchoolClassController{DB: db}
	studentCtrl := &schoolController.StudentController{DB: db}
	attCtrl := &schoolController.AttendanceController{DB: db}

	r.Get("/school-classes", classCtrl.ListClasses)
	r.Get("/school-classes/:id", classCtrl.GetClass)
	r.Get("/school-classes/:id/attendance", attCtrl.ListClassAttendance)
	r.Get("/students", studentCtrl.ListStudents)
	r.Get("/students/:id", studentCtrl.GetStudent)
}

// Mutação restrita à secretaria
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	classCtrl := &schoolController.SchoolClassController{DB: db}
	studentCtrl := &schoolController.StudentController{DB: db}
	attCtrl := &schoolController.AttendanceController{DB: db}

	gate := authMiddleware.OnlyRoles(constants.RoleErrorSecretariat("escola dominical"), constants.SecretariatRoles...)

	classes := r.Group("/school-classes", gate)
	classes.Post("/", classCtrl.CreateClass)
	classes.Put("/:id", classCtrl.UpdateClass)
	classes.Delete("/:id", classCtrl.DeleteClass)
	classes.Post("/:id/attendance", attCtrl.RecordAttendance)

	students := r.Group("/students", gate)
	students.Post("/", studentCtrl.EnrollStudent)
	students.Put("/:id", studentCtrl.UpdateStudent)
	students.Delete("/:id", studentCtrl.DeleteStudent)
}
