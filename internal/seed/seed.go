package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/app/repositories"
	"github.com/yigit/academy/internal/pkg/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateDemoData fills an empty store with a small set of related records.
// It does nothing when any teacher already exists.
func CreateDemoData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	teachers, err := repos.TeacherRepository.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("error checking existing data: %w", err)
	}
	if len(teachers) > 0 {
		lgr.Info().Msg("Store already has data, skipping demo seed")
		return nil
	}

	lgr.Info().Msg("Creating demo data...")
	now := helpers.Now()
	var finalErr error // collect errors without stopping the process

	grace := &models.Teacher{
		ID: primitive.NewObjectID(), FirstName: "Grace", LastName: "Hopper",
		Email: "grace.hopper@example.com", Phone: "555-0100",
		Specialization: "Compilers", Experience: 20,
		Bio: "Wrote the first compiler.", CreatedAt: now,
	}
	alan := &models.Teacher{
		ID: primitive.NewObjectID(), FirstName: "Alan", LastName: "Kay",
		Email: "alan.kay@example.com", Phone: "555-0101",
		Specialization: "Object-oriented design", Experience: 15, CreatedAt: now,
	}
	for _, t := range []*models.Teacher{grace, alan} {
		if err := repos.TeacherRepository.Create(ctx, t); err != nil {
			lgr.Error().Err(err).Str("email", t.Email).Msg("Error creating demo teacher")
			finalErr = errors.Join(finalErr, err)
		}
	}

	goCourse := &models.Course{
		ID: primitive.NewObjectID(), Title: "Go Fundamentals",
		Description: "Types, interfaces and concurrency.", Instructor: &grace.ID,
		Duration: "6 weeks", Price: 49.9, Category: "Programming", CreatedAt: now,
	}
	designCourse := &models.Course{
		ID: primitive.NewObjectID(), Title: "Designing Systems",
		Description: "Messages, objects and late binding.", Instructor: &alan.ID,
		Duration: "4 weeks", Price: 39, Category: "Design", CreatedAt: now,
	}
	for _, c := range []*models.Course{goCourse, designCourse} {
		if err := repos.CourseRepository.Create(ctx, c); err != nil {
			lgr.Error().Err(err).Str("title", c.Title).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	ada := &models.Student{
		ID: primitive.NewObjectID(), FirstName: "Ada", LastName: "Lovelace",
		Email: "ada.lovelace@example.com", Phone: "555-0200",
		EnrolledCourses: []primitive.ObjectID{goCourse.ID},
		DateOfBirth:     time.Date(1995, time.December, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:       now,
	}
	if err := repos.StudentRepository.Create(ctx, ada); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo student")
		finalErr = errors.Join(finalErr, err)
	}

	lessons := []*models.Lesson{
		{ID: primitive.NewObjectID(), Title: "Hello, Go", Content: "Packages, functions and the toolchain.",
			Course: goCourse.ID, Duration: "30 min", Order: 1, CreatedAt: now},
		{ID: primitive.NewObjectID(), Title: "Goroutines", Content: "Starting concurrent work and waiting for it.",
			Course: goCourse.ID, Duration: "45 min", Order: 2, CreatedAt: now},
	}
	for _, l := range lessons {
		if err := repos.LessonRepository.Create(ctx, l); err != nil {
			lgr.Error().Err(err).Str("title", l.Title).Msg("Error creating demo lesson")
			finalErr = errors.Join(finalErr, err)
		}
	}

	feedback := &models.Feedback{
		ID: primitive.NewObjectID(), Student: ada.ID, Course: goCourse.ID,
		Rating: 5, Comment: "Clear and well paced.", CreatedAt: now,
	}
	if err := repos.FeedbackRepository.Create(ctx, feedback); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo feedback")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo data created")
	}
	return finalErr
}
