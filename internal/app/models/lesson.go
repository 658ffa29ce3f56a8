package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson belongs to a Course and is ordered within it.
type Lesson struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Course    primitive.ObjectID `json:"course" bson:"course"`
	Duration  string             `json:"duration" bson:"duration"`
	Order     int                `json:"order" bson:"order"`
	VideoURL  string             `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// DocumentID implements Document.
func (l Lesson) DocumentID() primitive.ObjectID { return l.ID }
