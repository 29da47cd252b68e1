package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mflstudio/concours/pkg/questions"
	"github.com/mflstudio/concours/pkg/repositories/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	ms, err := readMigrations(migrations)
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, m := range ms {
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.path, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) LoadQuestions(ctx context.Context) ([]questions.Question, error) {
	q := `
	SELECT prompt, choices, correct, theme, tier, neutral FROM questions ORDER BY id;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %v", err)
	}
	defer rows.Close()

	var qs []questions.Question
	for rows.Next() {
		var question questions.Question
		var choices string
		if err := rows.Scan(&question.Prompt, &choices, &question.Correct, &question.Theme, &question.Tier, &question.Neutral); err != nil {
			return nil, fmt.Errorf("failed to scan question: %v", err)
		}
		if err := json.Unmarshal([]byte(choices), &question.Choices); err != nil {
			return nil, fmt.Errorf("failed to decode choices of question %q: %v", question.Prompt, err)
		}
		qs = append(qs, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %v", err)
	}

	return qs, nil
}

func (r *SQLiteRepository) SaveQuestions(ctx context.Context, qs []questions.Question) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	q := `
	INSERT INTO questions (prompt, choices, correct, theme, tier, neutral)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	for _, question := range qs {
		choices, err := json.Marshal(question.Choices)
		if err != nil {
			return fmt.Errorf("failed to encode choices: %v", err)
		}
		if _, err := tx.ExecContext(ctx, q, question.Prompt, string(choices), question.Correct, question.Theme, question.Tier, question.Neutral); err != nil {
			return fmt.Errorf("failed to insert question: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) SaveRoundResult(ctx context.Context, result *models.RoundResult) error {
	scores, err := json.Marshal(result.Scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %v", err)
	}

	q := `
	INSERT INTO round_results (epoch, ended_at, scores, revealed, winner)
	VALUES (?, ?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, q, result.Epoch, result.EndedAt, string(scores), result.Revealed, result.Winner)
	if err != nil {
		return fmt.Errorf("failed to insert round result: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get round result id: %v", err)
	}
	result.ID = id

	return nil
}

func (r *SQLiteRepository) ListRoundResults(ctx context.Context, limit int) ([]*models.RoundResult, error) {
	q := `
	SELECT id, epoch, ended_at, scores, revealed, winner FROM round_results
	ORDER BY id DESC LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query round results: %v", err)
	}
	defer rows.Close()

	results := []*models.RoundResult{}
	for rows.Next() {
		result := &models.RoundResult{}
		var scores string
		if err := rows.Scan(&result.ID, &result.Epoch, &result.EndedAt, &scores, &result.Revealed, &result.Winner); err != nil {
			return nil, fmt.Errorf("failed to scan round result: %v", err)
		}
		if err := json.Unmarshal([]byte(scores), &result.Scores); err != nil {
			return nil, fmt.Errorf("failed to decode scores of round %d: %v", result.ID, err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read round results: %v", err)
	}

	return results, nil
}

func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	q := `
	INSERT OR REPLACE INTO snapshots (epoch, timestamp, data)
	VALUES (?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, snapshot.Epoch, snapshot.Timestamp, snapshot.Data)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadSnapshot(ctx context.Context, epoch uint64) (*models.Snapshot, error) {
	q := `
	SELECT epoch, timestamp, data FROM snapshots WHERE epoch = ?;
	`
	snapshot := &models.Snapshot{}
	if err := r.db.QueryRowContext(ctx, q, epoch).Scan(&snapshot.Epoch, &snapshot.Timestamp, &snapshot.Data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("snapshot of round %d: %w", epoch, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan snapshot: %v", err)
	}

	return snapshot, nil
}
