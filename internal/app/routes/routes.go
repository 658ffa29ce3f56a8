package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academy/internal/app/controllers"
)

// HealthCheck reports whether the backing store is reachable.
type HealthCheck func(ctx context.Context) error

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	lessonController *controllers.LessonController,
	feedbackController *controllers.FeedbackController,
	enrollmentController *controllers.EnrollmentController,
	healthCheck HealthCheck,
) {
	router.GET("/health", func(c *gin.Context) {
		if healthCheck != nil {
			if err := healthCheck(c); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Enrollment routes share the student id segment, so the item routes use
	// :studentId too; gin requires one wildcard name per path position.
	students := api.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/:studentId", studentController.GetStudentByID)
		students.PUT("/:studentId", studentController.UpdateStudent)
		students.DELETE("/:studentId", studentController.DeleteStudent)

		students.POST("/:studentId/enroll/:courseId", enrollmentController.Enroll)
		students.DELETE("/:studentId/unenroll/:courseId", enrollmentController.Unenroll)
		students.GET("/:studentId/courses", enrollmentController.GetEnrolledCourses)
	}

	teachers := api.Group("/teachers")
	{
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.POST("", teacherController.CreateTeacher)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.PUT("/:id", teacherController.UpdateTeacher)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)
	}

	lessons := api.Group("/lessons")
	{
		lessons.GET("", lessonController.GetAllLessons)
		lessons.POST("", lessonController.CreateLesson)
		lessons.GET("/:id", lessonController.GetLessonByID)
		lessons.PUT("/:id", lessonController.UpdateLesson)
		lessons.DELETE("/:id", lessonController.DeleteLesson)
	}

	feedback := api.Group("/feedback")
	{
		feedback.GET("", feedbackController.GetAllFeedback)
		feedback.POST("", feedbackController.CreateFeedback)
		feedback.GET("/:id", feedbackController.GetFeedbackByID)
		feedback.PUT("/:id", feedbackController.UpdateFeedback)
		feedback.DELETE("/:id", feedbackController.DeleteFeedback)
	}
}
