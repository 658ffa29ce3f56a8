package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/app/repositories"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"github.com/yigit/academy/internal/pkg/helpers"
	"github.com/yigit/academy/internal/pkg/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*dto.StudentResponse, error)
	GetStudentByID(ctx context.Context, id primitive.ObjectID) (*dto.StudentResponse, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id primitive.ObjectID, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id primitive.ObjectID) error
}

type studentServiceImpl struct {
	studentRepo repositories.StudentRepository
	courseRepo  repositories.CourseRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository, courseRepo repositories.CourseRepository, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		logger:      logger,
	}
}

// GetAllStudents retrieves all students with their enrolled courses
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*dto.StudentResponse, error) {
	students, err := s.studentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return populateStudents(ctx, s.courseRepo, students...)
}

// GetStudentByID retrieves a student with enrolled courses
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id primitive.ObjectID) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := populateStudents(ctx, s.courseRepo, student)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// CreateStudent validates and stores a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}
	if err := checkEmailAvailable(ctx, s.studentRepo, req.Email, primitive.NilObjectID); err != nil {
		return nil, err
	}

	student := req.ToModel(primitive.NewObjectID(), helpers.Now())
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Str("studentId", student.ID.Hex()).Msg("Student created")
	return student, nil
}

// UpdateStudent applies the supplied fields to a student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id primitive.ObjectID, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}
	if req.Email != nil {
		if err := checkEmailAvailable(ctx, s.studentRepo, *req.Email, id); err != nil {
			return nil, err
		}
	}
	return s.studentRepo.Update(ctx, id, req.Fields())
}

// DeleteStudent removes a student. Feedback referencing it is kept.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id primitive.ObjectID) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("studentId", id.Hex()).Msg("Student deleted")
	return nil
}

// populateStudents resolves enrolled courses, dropping ids whose course no longer exists.
func populateStudents(ctx context.Context, courseRepo repositories.CourseRepository, students ...*models.Student) ([]*dto.StudentResponse, error) {
	refs := newRefSet()
	for _, st := range students {
		refs.add(st.EnrolledCourses...)
	}

	courses, err := fetchByID[models.Course](ctx, courseRepo, refs)
	if err != nil {
		return nil, fmt.Errorf("error populating enrolled courses: %w", err)
	}

	out := make([]*dto.StudentResponse, 0, len(students))
	for _, st := range students {
		out = append(out, dto.NewStudentResponse(st, resolveCourses(st.EnrolledCourses, courses)))
	}
	return out, nil
}

func resolveCourses(ids []primitive.ObjectID, courses map[primitive.ObjectID]*models.Course) []*models.Course {
	out := make([]*models.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := courses[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func checkEmailAvailable(ctx context.Context, repo repositories.EmailIndexed, email string, excludeID primitive.ObjectID) error {
	exists, err := repo.EmailExists(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}
	return nil
}
