package dto

import (
	"time"

	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/pkg/coerce"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateTeacherRequest represents the body of POST /api/teachers
type CreateTeacherRequest struct {
	FirstName      string        `json:"firstName" validate:"required" example:"Grace"`
	LastName       string        `json:"lastName" validate:"required" example:"Hopper"`
	Email          string        `json:"email" validate:"required" example:"grace@example.com"`
	Phone          string        `json:"phone" validate:"required" example:"555-0100"`
	Specialization string        `json:"specialization" validate:"required" example:"Compilers"`
	Experience     *coerce.Float `json:"experience" validate:"required" swaggertype:"number" example:"12"`
	Bio            string        `json:"bio" example:"Rear admiral and programmer"`
}

// ToModel builds a new Teacher document.
func (r *CreateTeacherRequest) ToModel(id primitive.ObjectID, now time.Time) *models.Teacher {
	return &models.Teacher{
		ID:             id,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Specialization: r.Specialization,
		Experience:     float64(*r.Experience),
		Bio:            r.Bio,
		CreatedAt:      now,
	}
}

// UpdateTeacherRequest represents the body of PUT /api/teachers/{id}
type UpdateTeacherRequest struct {
	FirstName      *string       `json:"firstName" validate:"omitempty,min=1"`
	LastName       *string       `json:"lastName" validate:"omitempty,min=1"`
	Email          *string       `json:"email" validate:"omitempty,min=1"`
	Phone          *string       `json:"phone" validate:"omitempty,min=1"`
	Specialization *string       `json:"specialization" validate:"omitempty,min=1"`
	Experience     *coerce.Float `json:"experience" swaggertype:"number"`
	Bio            *string       `json:"bio"`
}

// Fields returns the stored fields this request sets.
func (r *UpdateTeacherRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "firstName", r.FirstName)
	setString(fields, "lastName", r.LastName)
	setString(fields, "email", r.Email)
	setString(fields, "phone", r.Phone)
	setString(fields, "specialization", r.Specialization)
	setString(fields, "bio", r.Bio)
	if r.Experience != nil {
		fields["experience"] = float64(*r.Experience)
	}
	return fields
}
