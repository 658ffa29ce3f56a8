package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/academy/internal/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index describes one index the application relies on.
type Index struct {
	Collection string
	Model      mongo.IndexModel
}

// Indexes returns every index the application needs, in creation order.
func Indexes() []Index {
	return []Index{
		{
			Collection: models.StudentCollection,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("students_email_unique").SetUnique(true),
			},
		},
		{
			Collection: models.TeacherCollection,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("teachers_email_unique").SetUnique(true),
			},
		},
		{
			Collection: models.LessonCollection,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "course", Value: 1}, {Key: "order", Value: 1}},
				Options: options.Index().SetName("lessons_course_order"),
			},
		},
		{
			Collection: models.FeedbackCollection,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "course", Value: 1}},
				Options: options.Index().SetName("feedback_course"),
			},
		},
	}
}

// Migrator manages collection indexes
type Migrator struct {
	db     *mongo.Database
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *mongo.Database, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// EnsureIndexes creates missing indexes. Creating an existing index with the
// same definition is a no-op on the server, so this runs on every start.
func (m *Migrator) EnsureIndexes(ctx context.Context) error {
	for _, idx := range Indexes() {
		name, err := m.db.Collection(idx.Collection).Indexes().CreateOne(ctx, idx.Model)
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.Collection, err)
		}
		m.logger.Debug().Str("collection", idx.Collection).Str("index", name).Msg("Index ensured")
	}

	m.logger.Info().Int("count", len(Indexes())).Msg("Indexes ensured")
	return nil
}
