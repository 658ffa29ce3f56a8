package repositories

import (
	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *mongo.Database) CourseRepository {
	return newCollectionRepository[models.Course](db, models.CourseCollection, apperrors.ErrCourseNotFound)
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *mongo.Database) LessonRepository {
	return newCollectionRepository[models.Lesson](db, models.LessonCollection, apperrors.ErrLessonNotFound)
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *mongo.Database) FeedbackRepository {
	return newCollectionRepository[models.Feedback](db, models.FeedbackCollection, apperrors.ErrFeedbackNotFound)
}
