package dto

import (
	"time"

	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/pkg/coerce"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateFeedbackRequest represents the body of POST /api/feedback
type CreateFeedbackRequest struct {
	Student string      `json:"student" validate:"required,objectid" example:"6650c0ffee0ddba11a5e0003"`
	Course  string      `json:"course" validate:"required,objectid" example:"6650c0ffee0ddba11a5e0002"`
	Rating  *coerce.Int `json:"rating" validate:"required,min=1,max=5" swaggertype:"integer" example:"5"`
	Comment string      `json:"comment" validate:"required" example:"Clear and well paced"`
}

// ToModel builds a new Feedback document.
func (r *CreateFeedbackRequest) ToModel(id primitive.ObjectID, now time.Time) *models.Feedback {
	return &models.Feedback{
		ID:        id,
		Student:   mustObjectID(r.Student),
		Course:    mustObjectID(r.Course),
		Rating:    int(*r.Rating),
		Comment:   r.Comment,
		CreatedAt: now,
	}
}

// UpdateFeedbackRequest represents the body of PUT /api/feedback/{id}
type UpdateFeedbackRequest struct {
	Student *string     `json:"student" validate:"omitempty,objectid"`
	Course  *string     `json:"course" validate:"omitempty,objectid"`
	Rating  *coerce.Int `json:"rating" validate:"omitempty,min=1,max=5" swaggertype:"integer"`
	Comment *string     `json:"comment" validate:"omitempty,min=1"`
}

// Fields returns the stored fields this request sets.
func (r *UpdateFeedbackRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "comment", r.Comment)
	if r.Student != nil {
		fields["student"] = mustObjectID(*r.Student)
	}
	if r.Course != nil {
		fields["course"] = mustObjectID(*r.Course)
	}
	if r.Rating != nil {
		fields["rating"] = int(*r.Rating)
	}
	return fields
}

// FeedbackResponse is a Feedback with student and course populated.
type FeedbackResponse struct {
	ID        primitive.ObjectID `json:"_id" swaggertype:"string"`
	Student   *models.Student    `json:"student"`
	Course    *models.Course     `json:"course"`
	Rating    int                `json:"rating"`
	Comment   string             `json:"comment"`
	CreatedAt time.Time          `json:"createdAt"`
}

// NewFeedbackResponse embeds student and course; either may be nil when dangling.
func NewFeedbackResponse(f *models.Feedback, student *models.Student, course *models.Course) *FeedbackResponse {
	return &FeedbackResponse{
		ID:        f.ID,
		Student:   student,
		Course:    course,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}
