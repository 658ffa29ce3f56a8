package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEnrollmentService_EnrollIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	student := mustCreateStudent(t, s, "ada@example.com")
	course := mustCreateCourse(t, s, "Go", "")

	require.NoError(t, s.EnrollmentService.Enroll(ctx, student.ID, course.ID))
	require.NoError(t, s.EnrollmentService.Enroll(ctx, student.ID, course.ID))

	students, err := s.StudentService.GetAllStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Len(t, students[0].EnrolledCourses, 1)
	assert.Equal(t, course.ID, students[0].EnrolledCourses[0].ID)

	courses, err := s.EnrollmentService.GetEnrolledCourses(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	require.NoError(t, s.EnrollmentService.Unenroll(ctx, student.ID, course.ID))
	students, err = s.StudentService.GetAllStudents(ctx)
	require.NoError(t, err)
	assert.Empty(t, students[0].EnrolledCourses)
}

func TestEnrollmentService_UnenrollNotEnrolledIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	student := mustCreateStudent(t, s, "ada@example.com")

	assert.NoError(t, s.EnrollmentService.Unenroll(ctx, student.ID, primitive.NewObjectID()))
}

func TestEnrollmentService_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	student := mustCreateStudent(t, s, "ada@example.com")
	course := mustCreateCourse(t, s, "Go", "")

	err := s.EnrollmentService.Enroll(ctx, student.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrStudentOrCourseNotFound)
	err = s.EnrollmentService.Enroll(ctx, primitive.NewObjectID(), course.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentOrCourseNotFound)

	assert.ErrorIs(t, s.EnrollmentService.Unenroll(ctx, primitive.NewObjectID(), course.ID), apperrors.ErrStudentNotFound)
	_, err = s.EnrollmentService.GetEnrolledCourses(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestEnrollmentService_DeletedCourseDropsFromList(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	student := mustCreateStudent(t, s, "ada@example.com")
	kept := mustCreateCourse(t, s, "Go", "")
	gone := mustCreateCourse(t, s, "Rust", "")

	require.NoError(t, s.EnrollmentService.Enroll(ctx, student.ID, kept.ID))
	require.NoError(t, s.EnrollmentService.Enroll(ctx, student.ID, gone.ID))
	require.NoError(t, s.CourseService.DeleteCourse(ctx, gone.ID))

	courses, err := s.EnrollmentService.GetEnrolledCourses(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, kept.ID, courses[0].ID)
}
