package courseRoutes

import (
	controllers "codelearn/controllers/course"
	"codelearn/middleware"
	validators "codelearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog, enrollment and progress routes
func SetupCourseRoutes(app *fiber.App) {
	group := app.Group("/course")

	// Catalog browsing. The detail route shows enrollment state when the
	// caller is signed in, so it takes the token when one is present.
	group.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	group.Get("/enrolled", middleware.JWTMiddleware, controllers.GetEnrolledCourses)
	group.Get("/:id", middleware.OptionalJWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	group.Get("/:id/lessons", validators.CourseID(), controllers.GetCourseLessons)
	group.Get("/:course_id/lesson/:lesson_id", middleware.JWTMiddleware, validators.CourseLesson(), controllers.GetLesson)

	// Enrollment
	group.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Progress tracking
	group.Post("/:course_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.CourseLesson(), controllers.MarkLessonComplete)
	group.Post("/:course_id/lesson/:lesson_id/quiz", middleware.JWTMiddleware, validators.CourseLesson(), validators.QuizSubmit(), controllers.SubmitQuiz)
	group.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)
}
