package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
)

// AnswerRepository implements domain.AnswerRepository using SQLite.
type AnswerRepository struct {
	db *sql.DB
}

// NewAnswerRepository creates a new SQLite-backed AnswerRepository.
func NewAnswerRepository(db *DB) *AnswerRepository {
	return &AnswerRepository{db: db.SqlDB}
}

// Create inserts the answer. A question_id that references no question
// trips the foreign key constraint and is reported as ErrQuestionNotFound.
func (r *AnswerRepository) Create(ctx context.Context, answer *domain.Answer) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (author, detail, posted_at, question_id)
		 VALUES (?, ?, ?, ?)`,
		answer.Author, answer.Detail, now, answer.QuestionID,
	)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			return domain.ErrQuestionNotFound
		}
		return fmt.Errorf("insert answer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	answer.ID = id
	answer.PostedAt = now
	return nil
}

func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author, detail, posted_at, question_id
		 FROM answers WHERE question_id = ? ORDER BY id`, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.Author, &a.Detail, &a.PostedAt, &a.QuestionID); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// isForeignKeyConstraintError checks if the error is a SQLite foreign key violation.
func isForeignKeyConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
