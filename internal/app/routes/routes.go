package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/academia/course-portal/internal/app/controllers"
	"github.com/academia/course-portal/internal/middleware"
)

// SetupRouter configures all application routes. The login and register
// routes are the only anonymous ones; every other route sits behind the JWT
// gate.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public authentication routes ---
	authentication := api.Group("/authentication")
	{
		authentication.POST("/login", authController.Login)
		authentication.POST("/register", authController.Register)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetStudents)
			students.GET("/:id", studentController.GetStudent)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)

			// Student-facing enrollment shortcuts
			students.POST("/enroll", studentController.Enroll)
			students.DELETE("/unenroll/:id", studentController.Unenroll)
			students.GET("/:id/courses", studentController.GetEnrolledCourses)
			students.GET("/available-courses", studentController.GetAvailableCourses)
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetCourses)
			courses.GET("/:id", courseController.GetCourse)
			courses.POST("", courseController.CreateCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
			courses.GET("/:id/students", courseController.GetStudentsByCourse)
		}

		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.GET("", enrollmentController.GetEnrollments)
			enrollments.GET("/:id", enrollmentController.GetEnrollment)
			enrollments.POST("", enrollmentController.CreateEnrollment)
			enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
			enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
			enrollments.GET("/available-courses", enrollmentController.GetAvailableCourses)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
