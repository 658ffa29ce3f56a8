package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a course offering, optionally taught by a Teacher.
type Course struct {
	ID          primitive.ObjectID  `json:"_id" bson:"_id"`
	Title       string              `json:"title" bson:"title"`
	Description string              `json:"description" bson:"description"`
	Instructor  *primitive.ObjectID `json:"instructor,omitempty" bson:"instructor,omitempty"` // Teacher reference
	Duration    string              `json:"duration" bson:"duration"`
	Price       float64             `json:"price" bson:"price"`
	Category    string              `json:"category" bson:"category"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
}

// DocumentID implements Document.
func (c Course) DocumentID() primitive.ObjectID { return c.ID }
