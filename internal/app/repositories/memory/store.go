// Package memory provides process-local repositories for the memory driver
// and for tests. Records are kept BSON-encoded so reads never alias stored state.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/app/repositories"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type store[T models.Document] struct {
	mu       sync.RWMutex
	docs     map[primitive.ObjectID]bson.Raw
	order    []primitive.ObjectID
	notFound error
	// unique names a field no two records may share, "" for none.
	unique    string
	duplicate error
}

func newStore[T models.Document](notFound error) *store[T] {
	return &store[T]{
		docs:      make(map[primitive.ObjectID]bson.Raw),
		notFound:  notFound,
		duplicate: apperrors.ErrResourceAlreadyExists,
	}
}

func (s *store[T]) FindAll(ctx context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, 0, len(s.order))
	for _, id := range s.order {
		doc, err := decode[T](s.docs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *store[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.docs[id]
	if !ok {
		return nil, s.notFound
	}
	return decode[T](raw)
}

func (s *store[T]) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, 0, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		raw, ok := s.docs[id]
		if _, dup := seen[id]; !ok || dup {
			continue
		}
		seen[id] = struct{}{}
		doc, err := decode[T](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *store[T]) Create(ctx context.Context, doc *T) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}
	id := (*doc).DocumentID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; ok {
		return apperrors.ErrResourceAlreadyExists
	}
	if s.conflicts(id, raw) {
		return s.duplicate
	}
	s.docs[id] = raw
	s.order = append(s.order, id)
	return nil
}

func (s *store[T]) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.docs[id]
	if !ok {
		return nil, s.notFound
	}

	merged := bson.M{}
	if err := bson.Unmarshal(current, &merged); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	for k, v := range fields {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	raw, err := bson.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("error encoding document: %w", err)
	}
	if s.conflicts(id, raw) {
		return nil, s.duplicate
	}
	s.docs[id] = raw
	return decode[T](raw)
}

func (s *store[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return s.notFound
	}
	delete(s.docs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *store[T]) EmailExists(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, raw := range s.docs {
		if id == excludeID {
			continue
		}
		if v, ok := raw.Lookup("email").StringValueOK(); ok && v == email {
			return true, nil
		}
	}
	return false, nil
}

// conflicts reports whether raw repeats another record's unique field. Callers hold mu.
func (s *store[T]) conflicts(id primitive.ObjectID, raw bson.Raw) bool {
	if s.unique == "" {
		return false
	}
	value, err := raw.LookupErr(s.unique)
	if err != nil {
		return false
	}
	for other, doc := range s.docs {
		if other == id {
			continue
		}
		if v, err := doc.LookupErr(s.unique); err == nil && v.Equal(value) {
			return true
		}
	}
	return false
}

func decode[T any](raw bson.Raw) (*T, error) {
	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	return &doc, nil
}

// NewRepositories creates an empty in-memory repository set.
func NewRepositories() *repositories.Repositories {
	students := newStore[models.Student](apperrors.ErrStudentNotFound)
	students.unique, students.duplicate = "email", apperrors.ErrEmailAlreadyExists
	teachers := newStore[models.Teacher](apperrors.ErrTeacherNotFound)
	teachers.unique, teachers.duplicate = "email", apperrors.ErrEmailAlreadyExists

	return &repositories.Repositories{
		CourseRepository:   newStore[models.Course](apperrors.ErrCourseNotFound),
		StudentRepository:  students,
		TeacherRepository:  teachers,
		LessonRepository:   newStore[models.Lesson](apperrors.ErrLessonNotFound),
		FeedbackRepository: newStore[models.Feedback](apperrors.ErrFeedbackNotFound),
	}
}
