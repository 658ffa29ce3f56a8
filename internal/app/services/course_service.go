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

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*dto.CourseResponse, error)
	GetCourseByID(ctx context.Context, id primitive.ObjectID) (*dto.CourseResponse, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id primitive.ObjectID, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id primitive.ObjectID) error
}

type courseServiceImpl struct {
	courseRepo  repositories.CourseRepository
	teacherRepo repositories.TeacherRepository
	logger      zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository, teacherRepo repositories.TeacherRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

// GetAllCourses retrieves all courses with their instructors
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*dto.CourseResponse, error) {
	courses, err := s.courseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return s.populate(ctx, courses...)
}

// GetCourseByID retrieves a course with its instructor
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id primitive.ObjectID) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.populate(ctx, course)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// CreateCourse validates and stores a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}

	course := req.ToModel(primitive.NewObjectID(), helpers.Now())
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Str("courseId", course.ID.Hex()).Msg("Course created")
	return course, nil
}

// UpdateCourse applies the supplied fields to a course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id primitive.ObjectID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}
	return s.courseRepo.Update(ctx, id, req.Fields())
}

// DeleteCourse removes a course. Lessons, feedback and enrollments referencing it are kept.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id primitive.ObjectID) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("courseId", id.Hex()).Msg("Course deleted")
	return nil
}

func (s *courseServiceImpl) populate(ctx context.Context, courses ...*models.Course) ([]*dto.CourseResponse, error) {
	refs := newRefSet()
	for _, c := range courses {
		if c.Instructor != nil {
			refs.add(*c.Instructor)
		}
	}

	teachers, err := fetchByID[models.Teacher](ctx, s.teacherRepo, refs)
	if err != nil {
		return nil, fmt.Errorf("error populating instructors: %w", err)
	}

	out := make([]*dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		var instructor *models.Teacher
		if c.Instructor != nil {
			instructor = teachers[*c.Instructor]
		}
		out = append(out, dto.NewCourseResponse(c, instructor))
	}
	return out, nil
}
