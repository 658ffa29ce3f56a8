package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStudentService_CreateThenList(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	course := mustCreateCourse(t, s, "Go", "")

	student, err := s.StudentService.CreateStudent(ctx, decode[dto.CreateStudentRequest](t, `{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com", "phone": "555",
		"dateOfBirth": "1995-12-10",
		"enrolledCourses": ["`+course.ID.Hex()+`", "`+course.ID.Hex()+`"]}`))
	require.NoError(t, err)
	assert.Len(t, student.EnrolledCourses, 1)
	assert.Equal(t, 1995, student.DateOfBirth.Year())

	students, err := s.StudentService.GetAllStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "ada@example.com", students[0].Email)
	require.Len(t, students[0].EnrolledCourses, 1)
	assert.Equal(t, "Go", students[0].EnrolledCourses[0].Title)
}

func TestStudentService_DuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	mustCreateStudent(t, s, "ada@example.com")
	other := mustCreateStudent(t, s, "bob@example.com")

	_, err := s.StudentService.CreateStudent(ctx, decode[dto.CreateStudentRequest](t, `{
		"firstName": "Ada", "lastName": "Again", "email": "ada@example.com", "phone": "1",
		"dateOfBirth": "2000-01-01"}`))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = s.StudentService.UpdateStudent(ctx, other.ID, decode[dto.UpdateStudentRequest](t, `{"email": "ada@example.com"}`))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// The same email on a teacher is fine.
	mustCreateTeacher(t, s, "ada@example.com")
}

func TestStudentService_UpdateLeavesOtherFields(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	student := mustCreateStudent(t, s, "ada@example.com")

	updated, err := s.StudentService.UpdateStudent(ctx, student.ID, decode[dto.UpdateStudentRequest](t, `{"phone": "999", "email": "ada@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, "999", updated.Phone)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.True(t, student.DateOfBirth.Equal(updated.DateOfBirth))

	got, err := s.StudentService.GetStudentByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "999", got.Phone)
	assert.NotNil(t, got.EnrolledCourses)
}

func TestStudentService_MissingStudent(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.StudentService.GetStudentByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, s.StudentService.DeleteStudent(ctx, primitive.NewObjectID()), apperrors.ErrResourceNotFound)
}
