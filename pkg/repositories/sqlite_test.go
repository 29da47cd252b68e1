package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mflstudio/concours/pkg/questions"
	"github.com/mflstudio/concours/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sqliteMigrations = "../../migrations/sqlite"

func newTestSQLite(t *testing.T) Repository {
	t.Helper()
	ctx := context.Background()
	repo, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "test.db"), sqliteMigrations)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(ctx) })
	return repo
}

func TestSQLiteRepository_Questions(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLite(t)

	qs, err := repo.LoadQuestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, qs)

	in := []questions.Question{
		{Prompt: "Capitale du Japon ?", Choices: []string{"Kyoto", "Tokyo"}, Correct: 1, Theme: "geographie", Tier: 3},
		{Prompt: "2+2 ?", Choices: []string{"4", "5"}, Correct: 0, Neutral: true},
	}
	require.NoError(t, repo.SaveQuestions(ctx, in))

	qs, err = repo.LoadQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, qs)
}

func TestSQLiteRepository_RoundResults(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLite(t)

	first := &models.RoundResult{Epoch: 1, EndedAt: 1000, Scores: map[string]int{"yann": 4, "quentin": 2}, Revealed: 3, Winner: "yann"}
	second := &models.RoundResult{Epoch: 2, EndedAt: 2000, Scores: map[string]int{"yann": 0}, Revealed: 0}
	require.NoError(t, repo.SaveRoundResult(ctx, first))
	require.NoError(t, repo.SaveRoundResult(ctx, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	results, err := repo.ListRoundResults(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, second, results[0], "newest first")
	assert.Equal(t, first, results[1])

	results, err = repo.ListRoundResults(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSQLiteRepository_Snapshots(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLite(t)

	_, err := repo.LoadSnapshot(ctx, 1)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.SaveSnapshot(ctx, &models.Snapshot{Epoch: 1, Timestamp: 10, Data: []byte("a")}))
	require.NoError(t, repo.SaveSnapshot(ctx, &models.Snapshot{Epoch: 1, Timestamp: 20, Data: []byte("b")}))

	snapshot, err := repo.LoadSnapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &models.Snapshot{Epoch: 1, Timestamp: 20, Data: []byte("b")}, snapshot)
}

func TestNewRepository_UnsupportedScheme(t *testing.T) {
	_, err := NewRepository(context.Background(), "mysql://localhost", "../../migrations")
	assert.Error(t, err)
}

func TestNewSQLiteRepository_MissingMigrations(t *testing.T) {
	_, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "x.db"), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
