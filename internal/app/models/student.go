package models

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a learner. EnrolledCourses holds Course references without duplicates.
type Student struct {
	ID              primitive.ObjectID   `json:"_id" bson:"_id"`
	FirstName       string               `json:"firstName" bson:"firstName"`
	LastName        string               `json:"lastName" bson:"lastName"`
	Email           string               `json:"email" bson:"email"`
	Phone           string               `json:"phone" bson:"phone"`
	EnrolledCourses []primitive.ObjectID `json:"enrolledCourses" bson:"enrolledCourses"`
	DateOfBirth     time.Time            `json:"dateOfBirth" bson:"dateOfBirth"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
}

// DocumentID implements Document.
func (s Student) DocumentID() primitive.ObjectID { return s.ID }

// IsEnrolled reports whether courseID is already in the student's list.
func (s *Student) IsEnrolled(courseID primitive.ObjectID) bool {
	return slices.Contains(s.EnrolledCourses, courseID)
}

// WithoutCourse returns the enrolled list minus courseID, leaving the receiver untouched.
func (s *Student) WithoutCourse(courseID primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(s.EnrolledCourses))
	for _, id := range s.EnrolledCourses {
		if id != courseID {
			out = append(out, id)
		}
	}
	return out
}
