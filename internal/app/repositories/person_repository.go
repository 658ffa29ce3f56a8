package repositories

import (
	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/mongo"
)

// Students and teachers carry a unique email index, so a duplicate key on
// insert or update means the email is taken.

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *mongo.Database) StudentRepository {
	r := newCollectionRepository[models.Student](db, models.StudentCollection, apperrors.ErrStudentNotFound)
	r.duplicate = apperrors.ErrEmailAlreadyExists
	return r
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *mongo.Database) TeacherRepository {
	r := newCollectionRepository[models.Teacher](db, models.TeacherCollection, apperrors.ErrTeacherNotFound)
	r.duplicate = apperrors.ErrEmailAlreadyExists
	return r
}
