package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/mflstudio/concours/pkg/questions"
	"github.com/mflstudio/concours/pkg/repositories/models"
)

type Repository interface {
	Close(ctx context.Context) error
	LoadQuestions(ctx context.Context) ([]questions.Question, error)
	SaveQuestions(ctx context.Context, qs []questions.Question) error
	SaveRoundResult(ctx context.Context, result *models.RoundResult) error
	ListRoundResults(ctx context.Context, limit int) ([]*models.RoundResult, error)
	SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error
	LoadSnapshot(ctx context.Context, epoch uint64) (*models.Snapshot, error)
}

// NewRepository opens the repository named by url. Supported schemes are
// sqlite:// (a file path) and postgres:// or postgresql://.
// migrations is the root directory holding one sub-directory per driver.
func NewRepository(ctx context.Context, url string, migrations string) (Repository, error) {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		return NewSQLiteRepository(ctx, strings.TrimPrefix(url, "sqlite://"), migrations+"/sqlite")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return NewPostgresRepository(ctx, url, migrations+"/postgres")
	default:
		return nil, fmt.Errorf("unsupported database url %q", url)
	}
}
