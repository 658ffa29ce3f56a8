package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Collection names
const (
	CourseCollection   = "courses"
	StudentCollection  = "students"
	TeacherCollection  = "teachers"
	LessonCollection   = "lessons"
	FeedbackCollection = "feedback"
)

// Document is implemented by every stored entity.
type Document interface {
	DocumentID() primitive.ObjectID
}
