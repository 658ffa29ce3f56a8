package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a student's rating of a course.
type Feedback struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Student   primitive.ObjectID `json:"student" bson:"student"`
	Course    primitive.ObjectID `json:"course" bson:"course"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// DocumentID implements Document.
func (f Feedback) DocumentID() primitive.ObjectID { return f.ID }
