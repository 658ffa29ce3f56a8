package repositories

import (
	"context"

	"github.com/yigit/academy/internal/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the storage contract shared by every entity collection.
//
// Update applies fields as a partial update; a nil value removes the field.
// Lookups of a missing id return the entity's not-found error from apperrors.
type Repository[T models.Document] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	// FindByIDs returns the records that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*T, error)
	Create(ctx context.Context, doc *T) error
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*T, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EmailIndexed is implemented by collections with a unique email.
type EmailIndexed interface {
	// EmailExists reports whether another record than excludeID uses email.
	// Pass primitive.NilObjectID to check against every record.
	EmailExists(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error)
}

type (
	CourseRepository   = Repository[models.Course]
	LessonRepository   = Repository[models.Lesson]
	FeedbackRepository = Repository[models.Feedback]
)

// StudentRepository stores students.
type StudentRepository interface {
	Repository[models.Student]
	EmailIndexed
}

// TeacherRepository stores teachers.
type TeacherRepository interface {
	Repository[models.Teacher]
	EmailIndexed
}

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository   CourseRepository
	StudentRepository  StudentRepository
	TeacherRepository  TeacherRepository
	LessonRepository   LessonRepository
	FeedbackRepository FeedbackRepository
}

// NewRepositories initializes all MongoDB-backed repositories
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		CourseRepository:   NewCourseRepository(db),
		StudentRepository:  NewStudentRepository(db),
		TeacherRepository:  NewTeacherRepository(db),
		LessonRepository:   NewLessonRepository(db),
		FeedbackRepository: NewFeedbackRepository(db),
	}
}
