package main

import (
	"log"

	"codelearn/config"
	"codelearn/database"
	"codelearn/models"
	courseModels "codelearn/models/course"
	adminRoutes "codelearn/routers/adminRoutes"
	authRoutes "codelearn/routers/authRoutes"
	courseRoutes "codelearn/routers/courseRoutes"
	userRoutes "codelearn/routers/userRoutes"
	courseService "codelearn/services/course"
	"codelearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Notify the student when a course first reaches completed
	courseService.OnCourseCompleted = func(userID, courseID uint) {
		var user models.User
		var course courseModels.Course
		if database.Database.Db.First(&user, userID).Error != nil {
			return
		}
		if database.Database.Db.First(&course, courseID).Error != nil {
			return
		}
		utils.SendCourseCompletedEmail(user.Email, user.FullName(), course.Title)
	}

	utils.InitializeAchievementScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	userRoutes.SetupUserRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
