package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/app/repositories"
	"github.com/yigit/academy/internal/pkg/helpers"
	"github.com/yigit/academy/internal/pkg/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, id primitive.ObjectID, req *dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id primitive.ObjectID) error
}

type teacherServiceImpl struct {
	teacherRepo repositories.TeacherRepository
	logger      zerolog.Logger
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo repositories.TeacherRepository, logger zerolog.Logger) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	return s.teacherRepo.FindByID(ctx, id)
}

func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}
	if err := checkEmailAvailable(ctx, s.teacherRepo, req.Email, primitive.NilObjectID); err != nil {
		return nil, err
	}

	teacher := req.ToModel(primitive.NewObjectID(), helpers.Now())
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("error creating teacher: %w", err)
	}

	s.logger.Info().Str("teacherId", teacher.ID.Hex()).Msg("Teacher created")
	return teacher, nil
}

func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id primitive.ObjectID, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}
	if req.Email != nil {
		if err := checkEmailAvailable(ctx, s.teacherRepo, *req.Email, id); err != nil {
			return nil, err
		}
	}
	return s.teacherRepo.Update(ctx, id, req.Fields())
}

// DeleteTeacher removes a teacher. Courses naming it as instructor keep the reference.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id primitive.ObjectID) error {
	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("teacherId", id.Hex()).Msg("Teacher deleted")
	return nil
}
