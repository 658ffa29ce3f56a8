package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/app/repositories"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// EnrollmentService manages the courses a student is enrolled in.
//
// Changes are a read-modify-write of the student's list without locking, so
// concurrent changes to the same student resolve as last writer wins.
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID primitive.ObjectID) error
	Unenroll(ctx context.Context, studentID, courseID primitive.ObjectID) error
	GetEnrolledCourses(ctx context.Context, studentID primitive.ObjectID) ([]*models.Course, error)
}

type enrollmentServiceImpl struct {
	studentRepo repositories.StudentRepository
	courseRepo  repositories.CourseRepository
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(studentRepo repositories.StudentRepository, courseRepo repositories.CourseRepository, logger zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		logger:      logger,
	}
}

// Enroll adds courseID to the student's list. Enrolling twice is a no-op.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID, courseID primitive.ObjectID) error {
	var student *models.Student
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		student, err = s.studentRepo.FindByID(gctx, studentID)
		return err
	})
	g.Go(func() error {
		_, err := s.courseRepo.FindByID(gctx, courseID)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrStudentOrCourseNotFound
		}
		return fmt.Errorf("error loading enrollment: %w", err)
	}

	if student.IsEnrolled(courseID) {
		return nil
	}

	enrolled := append(student.EnrolledCourses, courseID)
	if _, err := s.studentRepo.Update(ctx, studentID, bson.M{"enrolledCourses": enrolled}); err != nil {
		return err
	}

	s.logger.Info().Str("studentId", studentID.Hex()).Str("courseId", courseID.Hex()).Msg("Student enrolled")
	return nil
}

// Unenroll removes courseID from the student's list. Removing a course the
// student is not enrolled in is a no-op.
func (s *enrollmentServiceImpl) Unenroll(ctx context.Context, studentID, courseID primitive.ObjectID) error {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return err
	}
	if !student.IsEnrolled(courseID) {
		return nil
	}

	if _, err := s.studentRepo.Update(ctx, studentID, bson.M{"enrolledCourses": student.WithoutCourse(courseID)}); err != nil {
		return err
	}

	s.logger.Info().Str("studentId", studentID.Hex()).Str("courseId", courseID.Hex()).Msg("Student unenrolled")
	return nil
}

// GetEnrolledCourses returns the student's courses, skipping deleted ones.
func (s *enrollmentServiceImpl) GetEnrolledCourses(ctx context.Context, studentID primitive.ObjectID) ([]*models.Course, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	out, err := populateStudents(ctx, s.courseRepo, student)
	if err != nil {
		return nil, err
	}
	return out[0].EnrolledCourses, nil
}
