package userRoutes

import (
	userController "codelearn/controllers/user"
	"codelearn/middleware"
	validators "codelearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up the signed-in learner routes
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/user", middleware.JWTMiddleware)

	user.Get("/dashboard", userController.GetDashboard)
	user.Get("/achievements", userController.GetAchievements)

	// Certificates
	user.Get("/certificates", userController.GetUserCertificates)
	user.Post("/course/:id/certificate", validators.CourseID(), userController.RequestCertificate)
}
