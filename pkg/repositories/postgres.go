package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/questions"
	"github.com/mflstudio/concours/pkg/repositories/models"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to query database: %v", err)
	}
	log.Info("Connected to %s as %s", database, username)

	ms, err := readMigrations(migrations)
	if err != nil {
		pool.Close()
		return nil, err
	}
	for _, m := range ms {
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.path, err)
		}
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) LoadQuestions(ctx context.Context) ([]questions.Question, error) {
	rows, err := r.pool.Query(ctx, "SELECT prompt, choices, correct, theme, tier, neutral FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %v", err)
	}
	defer rows.Close()

	var qs []questions.Question
	for rows.Next() {
		var question questions.Question
		if err := rows.Scan(&question.Prompt, &question.Choices, &question.Correct, &question.Theme, &question.Tier, &question.Neutral); err != nil {
			return nil, fmt.Errorf("failed to scan question: %v", err)
		}
		qs = append(qs, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %v", err)
	}

	return qs, nil
}

func (r *PostgresRepository) SaveQuestions(ctx context.Context, qs []questions.Question) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, question := range qs {
		batch.Queue(`
		INSERT INTO questions (prompt, choices, correct, theme, tier, neutral)
		VALUES ($1, $2, $3, $4, $5, $6);
		`, question.Prompt, question.Choices, question.Correct, question.Theme, question.Tier, question.Neutral)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert questions: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *PostgresRepository) SaveRoundResult(ctx context.Context, result *models.RoundResult) error {
	scores, err := json.Marshal(result.Scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %v", err)
	}

	q := `
	INSERT INTO round_results (epoch, ended_at, scores, revealed, winner)
	VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	if err := r.pool.QueryRow(ctx, q, int64(result.Epoch), result.EndedAt, string(scores), result.Revealed, result.Winner).Scan(&result.ID); err != nil {
		return fmt.Errorf("failed to insert round result: %v", err)
	}

	return nil
}

func (r *PostgresRepository) ListRoundResults(ctx context.Context, limit int) ([]*models.RoundResult, error) {
	q := `
	SELECT id, epoch, ended_at, scores, revealed, winner FROM round_results
	ORDER BY id DESC LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query round results: %v", err)
	}
	defer rows.Close()

	results := []*models.RoundResult{}
	for rows.Next() {
		result := &models.RoundResult{}
		var epoch int64
		var scores []byte
		if err := rows.Scan(&result.ID, &epoch, &result.EndedAt, &scores, &result.Revealed, &result.Winner); err != nil {
			return nil, fmt.Errorf("failed to scan round result: %v", err)
		}
		result.Epoch = uint64(epoch)
		if err := json.Unmarshal(scores, &result.Scores); err != nil {
			return nil, fmt.Errorf("failed to decode scores of round %d: %v", result.ID, err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read round results: %v", err)
	}

	return results, nil
}

func (r *PostgresRepository) SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	q := `
	INSERT INTO snapshots (epoch, timestamp, data) VALUES ($1, $2, $3)
	ON CONFLICT (epoch) DO UPDATE SET timestamp = $2, data = $3;
	`
	_, err := r.pool.Exec(ctx, q, int64(snapshot.Epoch), snapshot.Timestamp, snapshot.Data)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadSnapshot(ctx context.Context, epoch uint64) (*models.Snapshot, error) {
	q := `
	SELECT timestamp, data FROM snapshots WHERE epoch = $1;
	`
	snapshot := &models.Snapshot{Epoch: epoch}
	if err := r.pool.QueryRow(ctx, q, int64(epoch)).Scan(&snapshot.Timestamp, &snapshot.Data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("snapshot of round %d: %w", epoch, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan snapshot: %v", err)
	}

	return snapshot, nil
}
