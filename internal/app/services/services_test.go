package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/app/repositories/memory"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	return NewServices(memory.NewRepositories(), zerolog.Nop())
}

// decode fills a request from JSON the way the HTTP layer does.
func decode[T any](t *testing.T, body string) *T {
	t.Helper()
	var req T
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func mustCreateTeacher(t *testing.T, s *Services, email string) *models.Teacher {
	t.Helper()
	teacher, err := s.TeacherService.CreateTeacher(context.Background(), decode[dto.CreateTeacherRequest](t, `{
		"firstName": "Grace", "lastName": "Hopper", "email": "`+email+`", "phone": "555",
		"specialization": "Compilers", "experience": "12"}`))
	require.NoError(t, err)
	return teacher
}

func mustCreateCourse(t *testing.T, s *Services, title, instructor string) *models.Course {
	t.Helper()
	course, err := s.CourseService.CreateCourse(context.Background(), decode[dto.CreateCourseRequest](t, `{
		"title": "`+title+`", "description": "d", "instructor": "`+instructor+`",
		"duration": "4 weeks", "price": "19.5", "category": "Programming"}`))
	require.NoError(t, err)
	return course
}

func mustCreateStudent(t *testing.T, s *Services, email string) *models.Student {
	t.Helper()
	student, err := s.StudentService.CreateStudent(context.Background(), decode[dto.CreateStudentRequest](t, `{
		"firstName": "Ada", "lastName": "Lovelace", "email": "`+email+`", "phone": "555",
		"dateOfBirth": "1995-12-10"}`))
	require.NoError(t, err)
	return student
}
