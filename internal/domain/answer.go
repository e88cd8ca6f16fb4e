package domain

import (
	"context"
	"time"
)

// Answer is a reply to a single Question. QuestionID must reference an
// existing question; the storage layer enforces this.
type Answer struct {
	ID         int64
	Author     string
	Detail     string
	PostedAt   time.Time
	QuestionID int64
}

// AnswerRepository defines persistence operations for answers.
type AnswerRepository interface {
	Create(ctx context.Context, answer *Answer) error
	// ListByQuestion returns all answers to the given question in id order.
	// An unknown question id yields an empty slice, not an error.
	ListByQuestion(ctx context.Context, questionID int64) ([]Answer, error)
}
