package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/app/repositories/memory"
)

func TestCreateDemoData(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	require.NoError(t, CreateDemoData(ctx, repos, zerolog.Nop()))

	courses, err := repos.CourseRepository.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
	for _, c := range courses {
		require.NotNil(t, c.Instructor)
	}

	students, err := repos.StudentRepository.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, courses[0].ID, students[0].EnrolledCourses[0])

	// A second run leaves the store unchanged.
	require.NoError(t, CreateDemoData(ctx, repos, zerolog.Nop()))
	teachers, err := repos.TeacherRepository.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, teachers, 2)
}
