package adminRoutes

import (
	adminController "codelearn/controllers/admin"
	"codelearn/middleware"
	adminValidator "codelearn/validators/admin"
	courseValidator "codelearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up course authoring and certificate management routes
func SetupAdminRoutes(app *fiber.App) {
	manageCourses := middleware.CheckPermissionMiddleware("manage-courses")
	manageCertificates := middleware.CheckPermissionMiddleware("manage-certificates")

	courseGroup := app.Group("/admin/course", middleware.JWTMiddleware)

	// Course CRUD
	courseGroup.Get("/list", adminController.AdminGetAllCourses)
	courseGroup.Post("/create", manageCourses, adminValidator.CourseBody(), adminController.AdminCreateCourse)
	courseGroup.Put("/:id", manageCourses, courseValidator.CourseID(), adminValidator.CourseBody(), adminController.AdminUpdateCourse)
	courseGroup.Delete("/:id", manageCourses, courseValidator.CourseID(), adminController.AdminDeleteCourse)
	courseGroup.Post("/:id/publish", manageCourses, courseValidator.CourseID(), adminController.AdminPublishCourse)

	// Lesson authoring
	courseGroup.Post("/:id/lesson", manageCourses, courseValidator.CourseID(), adminValidator.LessonBody(), adminController.AdminCreateLesson)
	courseGroup.Put("/:course_id/lesson/:lesson_id", manageCourses, courseValidator.CourseLesson(), adminValidator.LessonBody(), adminController.AdminUpdateLesson)
	courseGroup.Delete("/:course_id/lesson/:lesson_id", manageCourses, courseValidator.CourseLesson(), adminController.AdminDeleteLesson)
	courseGroup.Post("/:course_id/lesson/:lesson_id/publish", manageCourses, courseValidator.CourseLesson(), adminController.AdminPublishLesson)

	// Enrollment reporting
	courseGroup.Get("/:id/enrollments", courseValidator.CourseID(), adminController.AdminGetCourseEnrollments)

	// Certificate management
	certGroup := app.Group("/admin/certificate", middleware.JWTMiddleware, manageCertificates)
	certGroup.Get("/requests", adminController.AdminGetCertificateRequests)
	certGroup.Post("/:request_id/approve", adminValidator.RequestID(), adminController.AdminApproveCertificate)
	certGroup.Post("/:request_id/reject", adminValidator.RequestID(), adminValidator.RejectCertificate(), adminController.AdminRejectCertificate)

	// Dashboard
	app.Get("/admin/dashboard", middleware.JWTMiddleware, adminController.AdminDashboard)
}
