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
	"golang.org/x/sync/errgroup"
)

// FeedbackService defines the interface for feedback-related operations
type FeedbackService interface {
	GetAllFeedback(ctx context.Context) ([]*dto.FeedbackResponse, error)
	GetFeedbackByID(ctx context.Context, id primitive.ObjectID) (*dto.FeedbackResponse, error)
	CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error)
	UpdateFeedback(ctx context.Context, id primitive.ObjectID, req *dto.UpdateFeedbackRequest) (*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id primitive.ObjectID) error
}

type feedbackServiceImpl struct {
	feedbackRepo repositories.FeedbackRepository
	studentRepo  repositories.StudentRepository
	courseRepo   repositories.CourseRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, studentRepo repositories.StudentRepository, courseRepo repositories.CourseRepository) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		studentRepo:  studentRepo,
		courseRepo:   courseRepo,
	}
}

func (s *feedbackServiceImpl) GetAllFeedback(ctx context.Context) ([]*dto.FeedbackResponse, error) {
	feedback, err := s.feedbackRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return s.populate(ctx, feedback...)
}

func (s *feedbackServiceImpl) GetFeedbackByID(ctx context.Context, id primitive.ObjectID) (*dto.FeedbackResponse, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.populate(ctx, feedback)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// CreateFeedback stores a new rating. Student and course references are not checked.
func (s *feedbackServiceImpl) CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}

	feedback := req.ToModel(primitive.NewObjectID(), helpers.Now())
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("error creating feedback: %w", err)
	}
	return feedback, nil
}

func (s *feedbackServiceImpl) UpdateFeedback(ctx context.Context, id primitive.ObjectID, req *dto.UpdateFeedbackRequest) (*models.Feedback, error) {
	if err := validation.Validate(req).Err(); err != nil {
		return nil, err
	}
	return s.feedbackRepo.Update(ctx, id, req.Fields())
}

func (s *feedbackServiceImpl) DeleteFeedback(ctx context.Context, id primitive.ObjectID) error {
	return s.feedbackRepo.Delete(ctx, id)
}

// populate loads referenced students and courses with two concurrent reads.
func (s *feedbackServiceImpl) populate(ctx context.Context, feedback ...*models.Feedback) ([]*dto.FeedbackResponse, error) {
	studentRefs, courseRefs := newRefSet(), newRefSet()
	for _, f := range feedback {
		studentRefs.add(f.Student)
		courseRefs.add(f.Course)
	}

	var (
		students map[primitive.ObjectID]*models.Student
		courses  map[primitive.ObjectID]*models.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		students, err = fetchByID[models.Student](gctx, s.studentRepo, studentRefs)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = fetchByID[models.Course](gctx, s.courseRepo, courseRefs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error populating feedback: %w", err)
	}

	out := make([]*dto.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		out = append(out, dto.NewFeedbackResponse(f, students[f.Student], courses[f.Course]))
	}
	return out, nil
}
