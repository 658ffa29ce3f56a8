package migrations

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/app/models"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestIndexesCoverUniqueEmails(t *testing.T) {
	unique := map[string]bool{}
	for _, idx := range Indexes() {
		if idx.Model.Options != nil && idx.Model.Options.Unique != nil && *idx.Model.Options.Unique {
			unique[idx.Collection] = true
		}
	}

	assert.Equal(t, map[string]bool{
		models.StudentCollection: true,
		models.TeacherCollection: true,
	}, unique)
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates every index", func(mt *mtest.T) {
		for range Indexes() {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}

		err := NewMigrator(mt.DB, zerolog.Nop()).EnsureIndexes(context.Background())
		require.NoError(mt, err)
	})

	mt.Run("stops at the first failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Name:    "IndexOptionsConflict",
			Message: "index already exists with different options",
		}))

		err := NewMigrator(mt.DB, zerolog.Nop()).EnsureIndexes(context.Background())
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), models.StudentCollection)
	})
}
