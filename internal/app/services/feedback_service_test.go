package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/pkg/apperrors"
)

func TestFeedbackService_RatingBounds(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	course := mustCreateCourse(t, s, "Go", "")
	student := mustCreateStudent(t, s, "ada@example.com")

	tests := []struct {
		rating string
		valid  bool
	}{
		{"0", false},
		{"1", true},
		{"5", true},
		{"6", false},
		{`"3"`, true},
		{"4.5", false},
	}

	for _, tt := range tests {
		t.Run("rating "+tt.rating, func(t *testing.T) {
			body := fmt.Sprintf(`{"student": %q, "course": %q, "rating": %s, "comment": "ok"}`,
				student.ID.Hex(), course.ID.Hex(), tt.rating)
			var req dto.CreateFeedbackRequest
			if err := json.Unmarshal([]byte(body), &req); err != nil {
				assert.False(t, tt.valid, "decode failed: %v", err)
				return
			}

			_, err := s.FeedbackService.CreateFeedback(ctx, &req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			}
		})
	}
}

func TestFeedbackService_PopulatesStudentAndCourse(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	course := mustCreateCourse(t, s, "Go", "")
	student := mustCreateStudent(t, s, "ada@example.com")

	feedback, err := s.FeedbackService.CreateFeedback(ctx, decode[dto.CreateFeedbackRequest](t, `{
		"student": "`+student.ID.Hex()+`", "course": "`+course.ID.Hex()+`", "rating": 5, "comment": "great"}`))
	require.NoError(t, err)

	got, err := s.FeedbackService.GetFeedbackByID(ctx, feedback.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Student)
	require.NotNil(t, got.Course)
	assert.Equal(t, "ada@example.com", got.Student.Email)
	assert.Equal(t, "Go", got.Course.Title)

	updated, err := s.FeedbackService.UpdateFeedback(ctx, feedback.ID, decode[dto.UpdateFeedbackRequest](t, `{"rating": 2}`))
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "great", updated.Comment)

	_, err = s.FeedbackService.UpdateFeedback(ctx, feedback.ID, decode[dto.UpdateFeedbackRequest](t, `{"rating": 9}`))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	require.NoError(t, s.FeedbackService.DeleteFeedback(ctx, feedback.ID))
	all, err := s.FeedbackService.GetAllFeedback(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
