package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func courseDoc(id primitive.ObjectID, title string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "description", Value: "d"},
		{Key: "duration", Value: "4 weeks"},
		{Key: "price", Value: 10.5},
		{Key: "category", Value: "Programming"},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Unix(0, 0))},
	}
}

func TestCollectionRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find all decodes every batch", func(mt *mtest.T) {
		repo := NewCourseRepository(mt.DB)
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		ns := mt.DB.Name() + "." + models.CourseCollection
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, courseDoc(a, "A")),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch, courseDoc(b, "B")),
		)

		courses, err := repo.FindAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, courses, 2)
		assert.Equal(mt, a, courses[0].ID)
		assert.Equal(mt, "B", courses[1].Title)
		assert.Nil(mt, courses[0].Instructor)
	})

	mt.Run("find by id maps no documents to not found", func(mt *mtest.T) {
		repo := NewCourseRepository(mt.DB)
		ns := mt.DB.Name() + "." + models.CourseCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, apperrors.ErrCourseNotFound)
		assert.ErrorIs(mt, err, apperrors.ErrResourceNotFound)
	})

	mt.Run("find by ids without ids skips the query", func(mt *mtest.T) {
		repo := NewCourseRepository(mt.DB)

		courses, err := repo.FindByIDs(ctx, nil)
		require.NoError(mt, err)
		assert.Empty(mt, courses)
	})

	mt.Run("create succeeds", func(mt *mtest.T) {
		repo := NewCourseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(ctx, &models.Course{ID: primitive.NewObjectID(), Title: "Go"})
		assert.NoError(mt, err)
	})

	mt.Run("duplicate student email", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: students index: email_1",
		}))

		err := repo.Create(ctx, &models.Student{ID: primitive.NewObjectID(), Email: "a@b.c"})
		assert.ErrorIs(mt, err, apperrors.ErrEmailAlreadyExists)
	})

	mt.Run("update returns the new document", func(mt *mtest.T) {
		repo := NewCourseRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: courseDoc(id, "Renamed")},
		})

		course, err := repo.Update(ctx, id, bson.M{"title": "Renamed"})
		require.NoError(mt, err)
		assert.Equal(mt, "Renamed", course.Title)
	})

	mt.Run("update of a missing document", func(mt *mtest.T) {
		repo := NewLessonRepository(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		_, err := repo.Update(ctx, primitive.NewObjectID(), bson.M{"title": "x"})
		assert.ErrorIs(mt, err, apperrors.ErrLessonNotFound)
	})

	mt.Run("delete reports a missing document", func(mt *mtest.T) {
		repo := NewFeedbackRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, apperrors.ErrFeedbackNotFound)
	})

	mt.Run("delete succeeds", func(mt *mtest.T) {
		repo := NewFeedbackRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Delete(ctx, primitive.NewObjectID()))
	})

	mt.Run("email exists counts matches", func(mt *mtest.T) {
		repo := NewTeacherRepository(mt.DB)
		ns := mt.DB.Name() + "." + models.TeacherCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		exists, err := repo.EmailExists(ctx, "t@example.com", primitive.NilObjectID)
		require.NoError(mt, err)
		assert.True(mt, exists)
	})
}

func TestUpdateDocument(t *testing.T) {
	update := updateDocument(bson.M{"title": "Go", "instructor": nil})

	assert.Equal(t, bson.M{
		"$set":   bson.M{"title": "Go"},
		"$unset": bson.M{"instructor": ""},
	}, update)
	assert.Empty(t, updateDocument(bson.M{}))
}
