package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
)

// QuestionRepository implements domain.QuestionRepository using SQLite.
type QuestionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new SQLite-backed QuestionRepository.
func NewQuestionRepository(db *DB) *QuestionRepository {
	return &QuestionRepository{db: db.SqlDB}
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (author, detail, posted_at)
		 VALUES (?, ?, ?)`,
		question.Author, question.Detail, now,
	)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	question.ID = id
	question.PostedAt = now
	return nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	q := &domain.Question{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, author, detail, posted_at
		 FROM questions WHERE id = ?`, id,
	).Scan(&q.ID, &q.Author, &q.Detail, &q.PostedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query question by id: %w", err)
	}
	return q, nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author, detail, posted_at
		 FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// SearchByDetail matches with instr() rather than LIKE: SQLite's LIKE is
// case-insensitive for ASCII, and the search contract is case-sensitive.
func (r *QuestionRepository) SearchByDetail(ctx context.Context, substring string) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author, detail, posted_at
		 FROM questions WHERE instr(detail, ?) > 0 ORDER BY id`, substring)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func scanQuestions(rows *sql.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Author, &q.Detail, &q.PostedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
