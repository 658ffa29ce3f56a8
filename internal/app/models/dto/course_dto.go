package dto

import (
	"time"

	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/pkg/coerce"
	"github.com/yigit/academy/internal/pkg/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCourseRequest represents the body of POST /api/courses
type CreateCourseRequest struct {
	Title       string        `json:"title" validate:"required" example:"Go Fundamentals"`
	Description string        `json:"description" validate:"required" example:"Types, interfaces and concurrency"`
	Instructor  string        `json:"instructor" validate:"omitempty,objectid" example:"6650c0ffee0ddba11a5e0001"`
	Duration    string        `json:"duration" validate:"required" example:"6 weeks"`
	Price       *coerce.Float `json:"price" validate:"required" swaggertype:"number" example:"49.9"`
	Category    string        `json:"category" validate:"required" example:"Programming"`
}

// ToModel builds a new Course document.
func (r *CreateCourseRequest) ToModel(id primitive.ObjectID, now time.Time) *models.Course {
	course := &models.Course{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       float64(*r.Price),
		Category:    r.Category,
		CreatedAt:   now,
	}
	if r.Instructor != "" {
		instructor := mustObjectID(r.Instructor)
		course.Instructor = &instructor
	}
	return course
}

// UpdateCourseRequest represents the body of PUT /api/courses/{id}. Absent fields are left unchanged.
type UpdateCourseRequest struct {
	Title       *string       `json:"title" validate:"omitempty,min=1"`
	Description *string       `json:"description" validate:"omitempty,min=1"`
	Instructor  *string       `json:"instructor"` // "" clears the instructor
	Duration    *string       `json:"duration" validate:"omitempty,min=1"`
	Price       *coerce.Float `json:"price" swaggertype:"number"`
	Category    *string       `json:"category" validate:"omitempty,min=1"`
}

// Check implements validation.Checker.
func (r *UpdateCourseRequest) Check(res *validation.Result) {
	if r.Instructor != nil && *r.Instructor != "" && !validation.IsObjectID(*r.Instructor) {
		res.Add("instructor", "must be a valid id")
	}
}

// Fields returns the stored fields this request sets.
func (r *UpdateCourseRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "title", r.Title)
	setString(fields, "description", r.Description)
	setString(fields, "duration", r.Duration)
	setString(fields, "category", r.Category)
	if r.Price != nil {
		fields["price"] = float64(*r.Price)
	}
	if r.Instructor != nil {
		if *r.Instructor == "" {
			fields["instructor"] = nil
		} else {
			fields["instructor"] = mustObjectID(*r.Instructor)
		}
	}
	return fields
}

// CourseResponse is a Course with its instructor populated.
type CourseResponse struct {
	ID          primitive.ObjectID `json:"_id" swaggertype:"string"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Instructor  *models.Teacher    `json:"instructor"`
	Duration    string             `json:"duration"`
	Price       float64            `json:"price"`
	Category    string             `json:"category"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// NewCourseResponse embeds instructor, which is nil when unset or dangling.
func NewCourseResponse(c *models.Course, instructor *models.Teacher) *CourseResponse {
	return &CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Instructor:  instructor,
		Duration:    c.Duration,
		Price:       c.Price,
		Category:    c.Category,
		CreatedAt:   c.CreatedAt,
	}
}

func setString(fields bson.M, key string, v *string) {
	if v != nil {
		fields[key] = *v
	}
}
