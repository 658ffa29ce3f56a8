package services

import (
	"context"
	"fmt"

	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/app/repositories"
	"github.com/yigit/academy/internal/pkg/helpers"
	"github.com/yigit/academy/internal/pkg/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LessonService defines the interface for lesson-related operations
type LessonService interface {
	GetAllLessons(ctx context.Context) ([]*dto.LessonResponse, error)
	GetLessonByID(ctx context.Context, id primitive.ObjectID) (*dto.LessonResponse, error)
	CreateLesson(ctx context.Context, req *dto.CreateLessonRequest) (*models.Lesson, error)
	UpdateLesson(ctx context.Context, id primitive.ObjectID, req *dto.UpdateLessonRequest) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, id primitive.ObjectID) error
}

type lessonServiceImpl struct {
	lessonRepo repositories.LessonRepository
	courseRepo repositories.CourseRepository
}

// NewLessonService creates a new lesson service instance
func NewLessonService(lessonRepo repositories.LessonRepository, courseRepo repositories.CourseRepository) LessonService {
	return &lessonServiceImpl{
		lessonRepo: lessonRepo,
		courseRepo: courseRepo,
	}
}

func (s *lessonServiceImpl) GetAllLessons(ctx context.Context) ([]*dto.LessonResponse, error) {
	lessons, err := s.lessonRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lessons: %w", err)
	}
	return s.populate(ctx, lessons...)
}

func (s *lessonServiceImpl) GetLessonByID(ctx context.Context, id primitive.ObjectID) (*dto.LessonResponse, error) {
	lesson, err := s.lessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.populate(ctx, lesson)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// CreateLesson stores a new lesson. The course reference is not checked;
// a dangling one populates as null.
func (s *lessonServiceImpl) CreateLesson(ctx context.Context, req *dto.CreateLessonRequest) (*models.Lesson, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}

	lesson := req.ToModel(primitive.NewObjectID(), helpers.Now())
	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("error creating lesson: %w", err)
	}
	return lesson, nil
}

func (s *lessonServiceImpl) UpdateLesson(ctx context.Context, id primitive.ObjectID, req *dto.UpdateLessonRequest) (*models.Lesson, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}
	return s.lessonRepo.Update(ctx, id, req.Fields())
}

func (s *lessonServiceImpl) DeleteLesson(ctx context.Context, id primitive.ObjectID) error {
	return s.lessonRepo.Delete(ctx, id)
}

func (s *lessonServiceImpl) populate(ctx context.Context, lessons ...*models.Lesson) ([]*dto.LessonResponse, error) {
	refs := newRefSet()
	for _, l := range lessons {
		refs.add(l.Course)
	}

	courses, err := fetchByID[models.Course](ctx, s.courseRepo, refs)
	if err != nil {
		return nil, fmt.Errorf("error populating lesson courses: %w", err)
	}

	out := make([]*dto.LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, dto.NewLessonResponse(l, courses[l.Course]))
	}
	return out, nil
}
