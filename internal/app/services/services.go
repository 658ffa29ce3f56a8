package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/academy/internal/app/repositories"
)

// Services defined in this package:
// - CourseService, StudentService, TeacherService, LessonService, FeedbackService:
//   list/get/create/update/delete per entity, with references populated on reads
// - EnrollmentService: adds and removes courses on a student's enrolled list

// Services holds all the service instances
type Services struct {
	CourseService     CourseService
	StudentService    StudentService
	TeacherService    TeacherService
	LessonService     LessonService
	FeedbackService   FeedbackService
	EnrollmentService EnrollmentService
}

// NewServices wires every service to repos
func NewServices(repos *repositories.Repositories, logger zerolog.Logger) *Services {
	return &Services{
		CourseService:     NewCourseService(repos.CourseRepository, repos.TeacherRepository, logger),
		StudentService:    NewStudentService(repos.StudentRepository, repos.CourseRepository, logger),
		TeacherService:    NewTeacherService(repos.TeacherRepository, logger),
		LessonService:     NewLessonService(repos.LessonRepository, repos.CourseRepository),
		FeedbackService:   NewFeedbackService(repos.FeedbackRepository, repos.StudentRepository, repos.CourseRepository),
		EnrollmentService: NewEnrollmentService(repos.StudentRepository, repos.CourseRepository, logger),
	}
}
