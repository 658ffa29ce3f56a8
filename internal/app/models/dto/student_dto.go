package dto

import (
	"time"

	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/pkg/coerce"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateStudentRequest represents the body of POST /api/students
type CreateStudentRequest struct {
	FirstName       string       `json:"firstName" validate:"required" example:"Ada"`
	LastName        string       `json:"lastName" validate:"required" example:"Lovelace"`
	Email           string       `json:"email" validate:"required" example:"ada@example.com"`
	Phone           string       `json:"phone" validate:"required" example:"+44 20 7946 0000"`
	DateOfBirth     *coerce.Date `json:"dateOfBirth" validate:"required" swaggertype:"string" example:"1815-12-10"`
	EnrolledCourses []string     `json:"enrolledCourses" validate:"omitempty,dive,objectid"`
}

// ToModel builds a new Student document. Repeated course ids collapse to one.
func (r *CreateStudentRequest) ToModel(id primitive.ObjectID, now time.Time) *models.Student {
	return &models.Student{
		ID:              id,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		EnrolledCourses: uniqueObjectIDs(r.EnrolledCourses),
		DateOfBirth:     r.DateOfBirth.Time,
		CreatedAt:       now,
	}
}

// UpdateStudentRequest represents the body of PUT /api/students/{id}
type UpdateStudentRequest struct {
	FirstName       *string      `json:"firstName" validate:"omitempty,min=1"`
	LastName        *string      `json:"lastName" validate:"omitempty,min=1"`
	Email           *string      `json:"email" validate:"omitempty,min=1"`
	Phone           *string      `json:"phone" validate:"omitempty,min=1"`
	DateOfBirth     *coerce.Date `json:"dateOfBirth" swaggertype:"string"`
	EnrolledCourses []string     `json:"enrolledCourses" validate:"omitempty,dive,objectid"`
}

// Fields returns the stored fields this request sets.
func (r *UpdateStudentRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "firstName", r.FirstName)
	setString(fields, "lastName", r.LastName)
	setString(fields, "email", r.Email)
	setString(fields, "phone", r.Phone)
	if r.DateOfBirth != nil {
		fields["dateOfBirth"] = r.DateOfBirth.Time
	}
	if r.EnrolledCourses != nil {
		fields["enrolledCourses"] = uniqueObjectIDs(r.EnrolledCourses)
	}
	return fields
}

// StudentResponse is a Student with enrolled courses populated.
type StudentResponse struct {
	ID              primitive.ObjectID `json:"_id" swaggertype:"string"`
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	EnrolledCourses []*models.Course   `json:"enrolledCourses"`
	DateOfBirth     time.Time          `json:"dateOfBirth"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// NewStudentResponse embeds courses; pass a non-nil slice so it encodes as [].
func NewStudentResponse(s *models.Student, courses []*models.Course) *StudentResponse {
	if courses == nil {
		courses = []*models.Course{}
	}
	return &StudentResponse{
		ID:              s.ID,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		Email:           s.Email,
		Phone:           s.Phone,
		EnrolledCourses: courses,
		DateOfBirth:     s.DateOfBirth,
		CreatedAt:       s.CreatedAt,
	}
}
