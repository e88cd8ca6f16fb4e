package domain

import (
	"context"
	"time"
)

// Question is a posted question. Author is a free-text display name, not a
// reference to a User.
type Question struct {
	ID       int64
	Author   string
	Detail   string
	PostedAt time.Time
}

// QuestionRepository defines persistence operations for questions.
// List and SearchByDetail return questions in id order, which is stable
// for a given dataset.
type QuestionRepository interface {
	Create(ctx context.Context, question *Question) error
	GetByID(ctx context.Context, id int64) (*Question, error)
	List(ctx context.Context) ([]Question, error)
	// SearchByDetail returns questions whose detail contains the given
	// substring. The match is case-sensitive.
	SearchByDetail(ctx context.Context, substring string) ([]Question, error)
}
