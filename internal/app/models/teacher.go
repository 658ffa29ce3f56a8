package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Teacher can be assigned as a course instructor.
type Teacher struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	FirstName      string             `json:"firstName" bson:"firstName"`
	LastName       string             `json:"lastName" bson:"lastName"`
	Email          string             `json:"email" bson:"email"`
	Phone          string             `json:"phone" bson:"phone"`
	Specialization string             `json:"specialization" bson:"specialization"`
	Experience     float64            `json:"experience" bson:"experience"` // years
	Bio            string             `json:"bio,omitempty" bson:"bio,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// DocumentID implements Document.
func (t Teacher) DocumentID() primitive.ObjectID { return t.ID }
