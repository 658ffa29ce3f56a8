package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/app/services"
	"github.com/yigit/academy/internal/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentController handles a student's enrolled courses
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll adds a course to a student
// @Summary Enroll a student in a course
// @Description Enrolling in a course the student already has is a no-op.
// @Tags enrollment
// @Produce json
// @Param studentId path string true "Student ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /students/{studentId}/enroll/{courseId} [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	studentID, courseID, ok := enrollmentParams(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.Enroll(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student enrolled successfully"))
}

// Unenroll removes a course from a student
// @Summary Unenroll a student from a course
// @Description Unenrolling from a course the student does not have is a no-op.
// @Tags enrollment
// @Produce json
// @Param studentId path string true "Student ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/unenroll/{courseId} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	studentID, courseID, ok := enrollmentParams(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.Unenroll(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student unenrolled successfully"))
}

// GetEnrolledCourses lists a student's courses
// @Summary List a student's courses
// @Tags enrollment
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {array} models.Course
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/courses [get]
func (c *EnrollmentController) GetEnrolledCourses(ctx *gin.Context) {
	studentID, err := middleware.ParamObjectID(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.enrollmentService.GetEnrolledCourses(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

func enrollmentParams(ctx *gin.Context) (studentID, courseID primitive.ObjectID, ok bool) {
	var err error
	if studentID, err = middleware.ParamObjectID(ctx, "studentId"); err == nil {
		courseID, err = middleware.ParamObjectID(ctx, "courseId")
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return studentID, courseID, false
	}
	return studentID, courseID, true
}
