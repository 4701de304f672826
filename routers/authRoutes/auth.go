package authRoutes

import (
	authController "codelearn/controllers/auth"
	"codelearn/middleware"
	authValidator "codelearn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", authValidator.Register(), authController.Register)
	auth.Post("/login", authValidator.Login(), authController.Login)
	auth.Post("/logout", middleware.JWTMiddleware, authController.Logout)
	auth.Get("/me", middleware.JWTMiddleware, authController.Me)
	auth.Post("/refresh", middleware.JWTMiddleware, authController.RefreshToken)
}
