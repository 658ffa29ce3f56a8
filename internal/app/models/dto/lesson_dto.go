package dto

import (
	"time"

	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/pkg/coerce"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateLessonRequest represents the body of POST /api/lessons
type CreateLessonRequest struct {
	Title    string      `json:"title" validate:"required" example:"Goroutines"`
	Content  string      `json:"content" validate:"required" example:"Starting concurrent work with go"`
	Course   string      `json:"course" validate:"required,objectid" example:"6650c0ffee0ddba11a5e0002"`
	Duration string      `json:"duration" validate:"required" example:"45 min"`
	Order    *coerce.Int `json:"order" validate:"required" swaggertype:"integer" example:"3"`
	VideoURL string      `json:"videoUrl" example:"https://videos.example.com/goroutines"`
}

// ToModel builds a new Lesson document.
func (r *CreateLessonRequest) ToModel(id primitive.ObjectID, now time.Time) *models.Lesson {
	return &models.Lesson{
		ID:        id,
		Title:     r.Title,
		Content:   r.Content,
		Course:    mustObjectID(r.Course),
		Duration:  r.Duration,
		Order:     int(*r.Order),
		VideoURL:  r.VideoURL,
		CreatedAt: now,
	}
}

// UpdateLessonRequest represents the body of PUT /api/lessons/{id}
type UpdateLessonRequest struct {
	Title    *string     `json:"title" validate:"omitempty,min=1"`
	Content  *string     `json:"content" validate:"omitempty,min=1"`
	Course   *string     `json:"course" validate:"omitempty,objectid"`
	Duration *string     `json:"duration" validate:"omitempty,min=1"`
	Order    *coerce.Int `json:"order" swaggertype:"integer"`
	VideoURL *string     `json:"videoUrl"`
}

// Fields returns the stored fields this request sets.
func (r *UpdateLessonRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "title", r.Title)
	setString(fields, "content", r.Content)
	setString(fields, "duration", r.Duration)
	setString(fields, "videoUrl", r.VideoURL)
	if r.Course != nil {
		fields["course"] = mustObjectID(*r.Course)
	}
	if r.Order != nil {
		fields["order"] = int(*r.Order)
	}
	return fields
}

// LessonResponse is a Lesson with its course populated.
type LessonResponse struct {
	ID        primitive.ObjectID `json:"_id" swaggertype:"string"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Course    *models.Course     `json:"course"` // null when the course no longer exists
	Duration  string             `json:"duration"`
	Order     int                `json:"order"`
	VideoURL  string             `json:"videoUrl,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// NewLessonResponse embeds course.
func NewLessonResponse(l *models.Lesson, course *models.Course) *LessonResponse {
	return &LessonResponse{
		ID:        l.ID,
		Title:     l.Title,
		Content:   l.Content,
		Course:    course,
		Duration:  l.Duration,
		Order:     l.Order,
		VideoURL:  l.VideoURL,
		CreatedAt: l.CreatedAt,
	}
}
