package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLessonService_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	course := mustCreateCourse(t, s, "Go", "")

	lesson, err := s.LessonService.CreateLesson(ctx, decode[dto.CreateLessonRequest](t, `{
		"title": "Intro", "content": "c", "course": "`+course.ID.Hex()+`", "duration": "5m", "order": "2",
		"videoUrl": "https://example.com/v"}`))
	require.NoError(t, err)
	assert.Equal(t, 2, lesson.Order)

	lessons, err := s.LessonService.GetAllLessons(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	require.NotNil(t, lessons[0].Course)
	assert.Equal(t, course.ID, lessons[0].Course.ID)

	updated, err := s.LessonService.UpdateLesson(ctx, lesson.ID, decode[dto.UpdateLessonRequest](t, `{"order": 3, "videoUrl": ""}`))
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Order)
	assert.Equal(t, "Intro", updated.Title)

	require.NoError(t, s.LessonService.DeleteLesson(ctx, lesson.ID))
	_, err = s.LessonService.GetLessonByID(ctx, lesson.ID)
	assert.ErrorIs(t, err, apperrors.ErrLessonNotFound)
}

func TestLessonService_CourseRequired(t *testing.T) {
	s := newTestServices(t)

	_, err := s.LessonService.CreateLesson(context.Background(), decode[dto.CreateLessonRequest](t, `{
		"title": "Intro", "content": "c", "duration": "5m", "order": 1}`))
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, []apperrors.FieldError{{Field: "course", Message: "is required"}}, apperrors.FieldErrors(err))

	_, err = s.LessonService.UpdateLesson(context.Background(), primitive.NewObjectID(),
		decode[dto.UpdateLessonRequest](t, `{"course": "123"}`))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
